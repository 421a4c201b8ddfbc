package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/emptrack/internal/store"
	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Driver  string `yaml:"driver"`
	DataDir string `yaml:"data_dir,omitempty"`
	Output  string `yaml:"output"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and initialize the database",
		Long: `Create the configuration directory and a default config.yaml, then open
the database, apply the schema, and seed it when it is empty.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	if err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), flags.dataDir); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	cfg, err := loadConfig(configDir, flags.dataDir)
	if err != nil {
		return err
	}

	s, err := store.Open(cmd.Context(), cfg)
	if err != nil {
		return sysError(fmt.Errorf("initialize storage: %w", err))
	}
	seeded := s.Seeded()
	if err := s.Close(); err != nil {
		return sysError(fmt.Errorf("finalize storage: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "emptrack initialized successfully")
	fmt.Fprintln(out, "  config:", configDir)
	fmt.Fprintln(out, "  driver:", cfg.Driver)
	if cfg.Driver == types.DriverSQLite {
		fmt.Fprintln(out, "  data:  ", cfg.DSN)
	}
	if seeded {
		fmt.Fprintln(out, "  seeded with sample data")
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. An existing file is left untouched.
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Driver:  types.DriverSQLite,
		DataDir: dataDir,
		Output:  types.OutputTable,
	}
	if dataDir != "" {
		abs, err := filepath.Abs(dataDir)
		if err != nil {
			return err
		}
		cfg.DataDir = abs
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# emptrack configuration\n# driver: sqlite | postgres | pgx; dsn is required for postgres and pgx.\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}
