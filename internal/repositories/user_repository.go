package repositories

import (
	"context"
	"strings"

	"catering_backend/internal/models"
)

const userColumns = `id, name, email, role, status, hourly_rate, phone, is_sample, created_at, updated_at`

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.HourlyRate, &u.Phone,
		&u.IsSample, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetUsers lists users by name.
func (s *LocalStore) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := queryAll(ctx, s.db, s.q(`SELECT `+userColumns+` FROM users ORDER BY name, id`), scanUser)
	if err != nil {
		return nil, storeErr("user", "list", err)
	}
	return users, nil
}

// GetUser retrieves a user by native id.
func (s *LocalStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, s.db, id)
}

func (s *LocalStore) getUser(ctx context.Context, executor SQLExecutor, id int64) (*models.User, error) {
	u, err := scanUser(executor.QueryRowContext(ctx, s.q(`SELECT `+userColumns+` FROM users WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("user", "get", err)
	}
	return &u, nil
}

// GetUserByEmail matches the address case-insensitively.
func (s *LocalStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		s.q(`SELECT `+userColumns+` FROM users WHERE LOWER(email) = ?`), strings.ToLower(strings.TrimSpace(email))))
	if err != nil {
		return nil, storeErr("user", "get by email", err)
	}
	return &u, nil
}

// AddUser inserts a user. Empty role and status default to staff/active.
func (s *LocalStore) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	id, err := s.insertUser(ctx, s.db, &user)
	if err != nil {
		return nil, storeErr("user", "create", err)
	}
	return s.GetUser(ctx, id)
}

func (s *LocalStore) insertUser(ctx context.Context, executor SQLExecutor, user *models.User) (int64, error) {
	if user.Role == "" {
		user.Role = models.RoleStaff
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	now := s.now()
	return s.insert(ctx, executor,
		`INSERT INTO users (name, email, role, status, hourly_rate, phone, is_sample, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Name, strings.TrimSpace(user.Email), user.Role, user.Status, user.HourlyRate, user.Phone,
		user.IsSample, now, now)
}

// UpdateUser applies a sparse patch and returns the stored row.
func (s *LocalStore) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if err := s.updateRow(ctx, models.TableUsers, "user", id, patch, true); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, id)
}

// DeleteUser removes a user. Rows owned by the user cascade.
func (s *LocalStore) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableUsers, "user", id)
}
