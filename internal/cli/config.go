package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/emptrack/internal/paths"
	"github.com/mesh-intelligence/emptrack/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	dotEnvFile     = ".env"
	envPrefix      = "EMPTRACK"

	cfgKeyDriver     = "driver"
	cfgKeyDSN        = "dsn"
	cfgKeyDataDir    = "data_dir"
	cfgKeySchemaFile = "schema_file"
	cfgKeySeedFile   = "seed_file"
	cfgKeyOutput     = "output"
	cfgKeyColor      = "color"
)

// envKeys are read from EMPTRACK_<KEY> and override config.yaml. data_dir is
// left out; paths.ResolveDataDir applies its own precedence.
var envKeys = []string{cfgKeyDriver, cfgKeyDSN, cfgKeySchemaFile, cfgKeySeedFile, cfgKeyOutput, cfgKeyColor}

// loadConfig builds the store configuration from configDir/.env,
// configDir/config.yaml, EMPTRACK_* variables, and the --data-dir flag.
// A missing config.yaml or .env is not an error.
func loadConfig(configDir, dataDirFlag string) (types.Config, error) {
	if err := loadDotEnv(configDir); err != nil {
		return types.Config{}, err
	}

	v := viper.New()
	v.SetDefault(cfgKeyDriver, types.DriverSQLite)
	v.SetDefault(cfgKeyOutput, types.OutputTable)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	dataDir, err := paths.ResolveDataDir(dataDirFlag, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Driver:     v.GetString(cfgKeyDriver),
		DSN:        v.GetString(cfgKeyDSN),
		DataDir:    dataDir,
		SchemaFile: v.GetString(cfgKeySchemaFile),
		SeedFile:   v.GetString(cfgKeySeedFile),
		Output:     v.GetString(cfgKeyOutput),
		Color:      v.GetBool(cfgKeyColor),
	}
	if cfg.DSN == "" && cfg.Driver == types.DriverSQLite {
		cfg.DSN = paths.DatabasePath(dataDir)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads configDir/.env into the process environment. Variables
// already set in the environment win.
func loadDotEnv(configDir string) error {
	path := filepath.Join(configDir, dotEnvFile)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadSettings resolves the config directory from flags and loads the
// configuration from it.
func loadSettings() (string, types.Config, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir, flags.dataDir)
	if err != nil {
		return "", types.Config{}, err
	}
	return configDir, cfg, nil
}
