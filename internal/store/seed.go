package store

import (
	"context"
	"fmt"
)

// seedIfEmpty executes the seed resource when the department table has no
// rows. It reports whether seeding ran. The seed runs in one transaction, so
// a failing seed leaves the store as empty as it found it.
func (s *Store) seedIfEmpty(ctx context.Context, seed resource) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM department"); err != nil {
		return false, fmt.Errorf("counting departments: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seeding store: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, seed.sql); err != nil {
		return false, fmt.Errorf("seeding store: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("seeding store: %w", err)
	}
	return true, nil
}
