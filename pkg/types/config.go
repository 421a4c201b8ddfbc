package types

import "errors"

// Config holds driver selection and parameters for store.Open.
type Config struct {
	Driver     string `json:"driver" yaml:"driver" mapstructure:"driver"`
	DSN        string `json:"dsn" yaml:"dsn,omitempty" mapstructure:"dsn"`
	DataDir    string `json:"data_dir" yaml:"data_dir,omitempty" mapstructure:"data_dir"`
	SchemaFile string `json:"schema_file" yaml:"schema_file,omitempty" mapstructure:"schema_file"`
	SeedFile   string `json:"seed_file" yaml:"seed_file,omitempty" mapstructure:"seed_file"`
	Output     string `json:"output" yaml:"output,omitempty" mapstructure:"output"`
	Color      bool   `json:"color" yaml:"color,omitempty" mapstructure:"color"`
}

// Supported driver names. Each matches the name registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

// Output modes for report rendering.
const (
	OutputTable = "table"
	OutputPlain = "plain"
)

// Config validation errors.
var (
	ErrDriverEmpty   = errors.New("driver must not be empty")
	ErrDriverUnknown = errors.New("unknown driver")
	ErrDSNEmpty      = errors.New("dsn must not be empty")
	ErrOutputUnknown = errors.New("unknown output mode")
)

var knownDrivers = map[string]bool{
	DriverSQLite:   true,
	DriverPostgres: true,
	DriverPgx:      true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Driver == "" {
		return ErrDriverEmpty
	}
	if !knownDrivers[c.Driver] {
		return ErrDriverUnknown
	}
	if c.DSN == "" {
		return ErrDSNEmpty
	}
	switch c.Output {
	case "", OutputTable, OutputPlain:
	default:
		return ErrOutputUnknown
	}
	return nil
}

// IsPostgres reports whether the configured driver speaks the PostgreSQL
// dialect.
func (c Config) IsPostgres() bool {
	return c.Driver == DriverPostgres || c.Driver == DriverPgx
}
