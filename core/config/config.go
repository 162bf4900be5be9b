package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"fixresx/core/database"
	"fixresx/core/logger"
	"fixresx/core/reconcile"
	"fixresx/core/server"
	"fixresx/core/storage"
	"fixresx/core/workspace"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigName is the base name of the optional config file (fixresx.yaml, .toml, .json).
const ConfigName = "fixresx"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Paths holds the directory layout and the run log location.
	Paths workspace.Config `mapstructure:"paths"`
	// Reconcile holds the reconciliation policy.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the run archive bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from defaults, an optional config file in
// path, a .env file and environment variables, in increasing precedence.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env file is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName(ConfigName)
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. PATHS_WORKING_DIR -> paths.working_dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	if err := c.Paths.Validate(); err != nil {
		return fmt.Errorf("paths: %w", err)
	}
	if c.Database.Enabled && !c.Database.IsValidDriver() {
		return fmt.Errorf("database: unsupported driver %q", c.Database.Driver)
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return fmt.Errorf("storage: bucket must be set when archiving is enabled")
	}
	if c.Reconcile.CacheTTLSeconds < 0 {
		return fmt.Errorf("reconcile: cache_ttl_seconds must not be negative")
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
