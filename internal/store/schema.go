// Schema and seed resources for the store.
package store

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// Embedded defaults, used when the config names no schema_file or seed_file.
var (
	//go:embed sql/schema_sqlite.sql
	schemaSQLite string

	//go:embed sql/schema_postgres.sql
	schemaPostgres string

	//go:embed sql/seeds.sql
	seedSQL string
)

// resource is a named block of SQL executed verbatim against the store.
type resource struct {
	name string
	sql  string
}

// loadResource returns the contents of path, or fallback when path is empty.
// A resource that is unreadable or blank is an error.
func loadResource(name, path, fallback string) (resource, error) {
	text := fallback
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return resource{}, fmt.Errorf("read %s %s: %w", name, path, err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return resource{}, fmt.Errorf("%s is empty", name)
	}
	return resource{name: name, sql: text}, nil
}

// schemaResource picks the schema for the configured dialect.
func schemaResource(cfg types.Config) (resource, error) {
	fallback := schemaSQLite
	if cfg.IsPostgres() {
		fallback = schemaPostgres
	}
	return loadResource("schema", cfg.SchemaFile, fallback)
}

func seedResource(cfg types.Config) (resource, error) {
	return loadResource("seed", cfg.SeedFile, seedSQL)
}

// ensureSchema executes the schema DDL. The default DDL is idempotent
// (CREATE ... IF NOT EXISTS), so this runs on every open.
func (s *Store) ensureSchema(ctx context.Context, schema resource) error {
	if _, err := s.db.ExecContext(ctx, schema.sql); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
