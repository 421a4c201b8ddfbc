// Package store implements the emptrack query layer over database/sql.
// Every operation is one parameterized statement, written with ? placeholders
// and rebound by sqlx for the configured driver.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// Store owns the single database handle for the process. It is opened once
// at startup and closed once on exit.
type Store struct {
	mu     sync.RWMutex
	db     *sqlx.DB
	seeded bool
}

// Open connects to the database described by cfg, applies the schema, and
// seeds the tables when they are empty. Any failure here is fatal to the
// caller: the handle is closed before returning the error.
func Open(ctx context.Context, cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Both resources are read before connecting so a missing file fails fast.
	schema, err := schemaResource(cfg)
	if err != nil {
		return nil, err
	}
	seed, err := seedResource(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Driver == types.DriverSQLite && cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if cfg.Driver == types.DriverSQLite {
		// foreign_keys is per connection; pin the pool to one.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == types.DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.ensureSchema(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	seeded, err := s.seedIfEmpty(ctx, seed)
	if err != nil {
		db.Close()
		return nil, err
	}
	s.seeded = seeded

	return s, nil
}

// Seeded reports whether Open populated an empty store with seed data.
func (s *Store) Seeded() bool {
	return s.seeded
}

// Close releases the database handle. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// handle returns the open database or ErrStoreClosed. The caller must hold
// s.mu for reading.
func (s *Store) handle() (*sqlx.DB, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

func (s *Store) get(ctx context.Context, dest any, query string, args ...any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.GetContext(ctx, dest, db.Rebind(query), args...)
}

func (s *Store) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.SelectContext(ctx, dest, db.Rebind(query), args...)
}

// exec runs a statement and returns the number of rows it touched.
func (s *Store) exec(ctx context.Context, query string, args ...any) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.handle()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// count runs a COUNT(*) style query and returns the scalar.
func (s *Store) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.get(ctx, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

// exists reports whether a row with the given id is present in table.
// table is always a package constant, never user input.
func (s *Store) exists(ctx context.Context, table string, id int64) (bool, error) {
	n, err := s.count(ctx, "SELECT COUNT(*) FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
