package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"catering_backend/internal/datastore"

	"github.com/lib/pq" // For pq.Error
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDatabaseError is returned for unexpected database errors.
// It wraps the driver error text.
var ErrDatabaseError = errors.New("database error")

// SQLExecutor is satisfied by *sql.DB and *sql.Tx, so repository helpers run
// inside or outside a transaction.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// scanner is an interface satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// classify maps driver errors onto the datastore taxonomy.
func classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return datastore.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s (constraint: %s)", datastore.ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		case "foreign_key_violation":
			return fmt.Errorf("%w: %s (constraint: %s)", datastore.ErrReferenced, pqErr.Message, pqErr.Constraint)
		}
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", datastore.ErrDuplicateKey, err)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %v", datastore.ErrReferenced, err)
		}
		// Without extended result codes only the primary code is set.
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			msg := liteErr.Error()
			switch {
			case strings.Contains(msg, "UNIQUE"):
				return fmt.Errorf("%w: %v", datastore.ErrDuplicateKey, err)
			case strings.Contains(msg, "FOREIGN KEY"):
				return fmt.Errorf("%w: %v", datastore.ErrReferenced, err)
			}
		}
	}
	return fmt.Errorf("%w: %v", ErrDatabaseError, err)
}

// storeErr classifies err and tags it with the local store, entity and operation.
func storeErr(entity, op string, err error) error {
	if err == nil {
		return nil
	}
	return datastore.Wrap(datastore.StoreLocal, entity, op, classify(err))
}

func notFound(entity, op string) error {
	return datastore.Wrap(datastore.StoreLocal, entity, op, datastore.ErrNotFound)
}
