package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"

	"catering_backend/internal/database"
	"catering_backend/internal/datastore"
	"catering_backend/pkg/utils"
)

var _ datastore.DataService = (*LocalStore)(nil)

// LocalStore is the embedded relational store. It only ever sees native
// (positive) ids.
type LocalStore struct {
	db      *sql.DB
	dialect database.Dialect
	now     func() time.Time
}

// NewLocalStore wraps an open database. Call Migrate before first use on a
// fresh database.
func NewLocalStore(db *sql.DB, dialect database.Dialect) *LocalStore {
	return &LocalStore{
		db:      db,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// OpenLocalStore opens the database behind dsn and creates missing tables.
func OpenLocalStore(dialect database.Dialect, dsn string) (*LocalStore, error) {
	db, err := database.Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	store := NewLocalStore(db, dialect)
	if err := store.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Migrate creates every table that does not exist yet.
func (s *LocalStore) Migrate() error {
	if err := database.ApplySchema(s.db, schemaStatements(s.dialect)); err != nil {
		return err
	}
	utils.LogDebug("Local schema is up to date", map[string]interface{}{"dialect": string(s.dialect)})
	return nil
}

// ApplyScript runs an extra SQL script against the store, e.g. site-specific
// indexes or reference rows. An empty path does nothing.
func (s *LocalStore) ApplyScript(path string) error {
	return database.ApplySchemaFile(s.db, path)
}

// Close releases the underlying database handle.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

func (s *LocalStore) q(query string) string {
	return s.dialect.Rebind(query)
}

// insert runs an INSERT and returns the generated id.
func (s *LocalStore) insert(ctx context.Context, executor SQLExecutor, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := executor.QueryRowContext(ctx, s.q(query+" RETURNING id"), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// updateRow applies the non-nil fields of patch to one row. touch also bumps
// updated_at. An empty patch changes nothing.
func (s *LocalStore) updateRow(ctx context.Context, table, entity string, id int64, patch interface{}, touch bool) error {
	sets, args := setClause(patch)
	if len(sets) == 0 {
		return nil
	}
	if touch {
		sets = append(sets, "updated_at = ?")
		args = append(args, s.now())
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, s.q(query), args...)
	if err != nil {
		return storeErr(entity, "update", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return storeErr(entity, "update", err)
	}
	if rows == 0 {
		return notFound(entity, "update")
	}
	return nil
}

func (s *LocalStore) deleteRow(ctx context.Context, table, entity string, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return storeErr(entity, "delete", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return storeErr(entity, "delete", err)
	}
	if rows == 0 {
		return notFound(entity, "delete")
	}
	return nil
}

// setClause turns a patch struct into "col = ?" fragments for every non-nil
// pointer field carrying a db tag.
func setClause(patch interface{}) ([]string, []interface{}) {
	v := reflect.ValueOf(patch)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil
	}
	t := v.Type()
	var (
		sets []string
		args []interface{}
	)
	for i := 0; i < t.NumField(); i++ {
		col := t.Field(i).Tag.Get("db")
		if col == "" || col == "-" {
			continue
		}
		f := v.Field(i)
		if f.Kind() != reflect.Pointer || f.IsNil() {
			continue
		}
		sets = append(sets, col+" = ?")
		args = append(args, f.Elem().Interface())
	}
	return sets, args
}

// queryAll runs a query and scans every row with scan. It never returns a nil
// slice on success.
func queryAll[T any](ctx context.Context, executor SQLExecutor, query string, scan func(scanner) (T, error), args ...interface{}) ([]T, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
