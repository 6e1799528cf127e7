package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/webperm/internal/application/port"
	"github.com/bnema/webperm/internal/logging"
)

// ErrDatabaseClosed is returned by DB after Close.
var ErrDatabaseClosed = errors.New("permission database closed")

// LazyDB opens the permission database on first use. Commands that only touch
// the config never pay for the WASM compile and the migration run.
type LazyDB struct {
	dbPath string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	closed  bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening and migrating the database on the first call.
// A failed open is remembered; later calls return the same error.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrDatabaseClosed
	case l.openErr != nil:
		return nil, fmt.Errorf("database initialization failed: %w", l.openErr)
	case l.db != nil:
		return l.db, nil
	}

	log := logging.FromContext(logging.WithComponent(ctx, "permission-db"))
	db, err := NewConnection(ctx, l.dbPath)
	if err != nil {
		log.Error().Err(err).Str("path", l.dbPath).Msg("failed to open permission database")
		l.openErr = err
		return nil, fmt.Errorf("database initialization failed: %w", err)
	}
	l.db = db
	return db, nil
}

// Close releases the connection. The provider cannot be reopened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.dbPath
}
