package repositories

import (
	"context"

	"catering_backend/internal/models"
)

const taskColumns = `id, event_id, title, status, due_date, assigned_user_id, created_at`

func scanTask(row scanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.EventID, &t.Title, &t.Status, &t.DueDate, &t.AssignedUserID, &t.CreatedAt)
	return t, err
}

func (s *LocalStore) GetTasks(ctx context.Context, eventID int64) ([]models.Task, error) {
	tasks, err := queryAll(ctx, s.db, s.q(`SELECT `+taskColumns+` FROM tasks WHERE event_id = ? ORDER BY id`), scanTask, eventID)
	if err != nil {
		return nil, storeErr("task", "list", err)
	}
	return tasks, nil
}

func (s *LocalStore) getTask(ctx context.Context, id int64) (*models.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx, s.q(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("task", "get", err)
	}
	return &t, nil
}

func (s *LocalStore) AddTask(ctx context.Context, task models.Task) (*models.Task, error) {
	id, err := s.insertTask(ctx, s.db, &task)
	if err != nil {
		return nil, storeErr("task", "create", err)
	}
	return s.getTask(ctx, id)
}

func (s *LocalStore) insertTask(ctx context.Context, executor SQLExecutor, task *models.Task) (int64, error) {
	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	return s.insert(ctx, executor,
		`INSERT INTO tasks (event_id, title, status, due_date, assigned_user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		task.EventID, task.Title, task.Status, task.DueDate, task.AssignedUserID, s.now())
}

func (s *LocalStore) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	if err := s.updateRow(ctx, models.TableTasks, "task", id, patch, false); err != nil {
		return nil, err
	}
	return s.getTask(ctx, id)
}

func (s *LocalStore) DeleteTask(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableTasks, "task", id)
}
