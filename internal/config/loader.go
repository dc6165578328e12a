package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ACTIONABLE_LOG_LEVEL=debug
const EnvPrefix = "ACTIONABLE"

// Load merges defaults, the global config, the project config and
// environment overrides, in increasing order of precedence
func Load() (*Config, error) {
	return LoadFrom(GlobalConfigPath(), ProjectConfigPath())
}

// LoadFrom merges the given config files over the defaults. Later files
// override earlier ones, missing files are skipped, and environment
// variables override everything.
func LoadFrom(paths ...string) (*Config, error) {
	v := newViper()

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// newViper seeds every default so env-only configs work
func newViper() *viper.Viper {
	d := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("version", d.Version)
	v.SetDefault("storage.db_path", d.Storage.DBPath)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("identity.base_url", d.Identity.BaseURL)
	v.SetDefault("identity.api_key", d.Identity.APIKey)
	v.SetDefault("identity.code_verifier", d.Identity.CodeVerifier)
	v.SetDefault("identity.timeout", d.Identity.Timeout)
	v.SetDefault("tasks.locale", d.Tasks.Locale)
	v.SetDefault("tasks.timezone", d.Tasks.Timezone)
	v.SetDefault("tasks.upcoming_limit", d.Tasks.UpcomingLimit)
	v.SetDefault("tasks.default_sort", d.Tasks.DefaultSort)
	v.SetDefault("tasks.default_order", d.Tasks.DefaultOrder)
	v.SetDefault("auth.listen_window", d.Auth.ListenWindow)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.outputs", d.Log.Outputs)
	v.SetDefault("log.development", d.Log.Development)
	v.SetDefault("log.rotation.enable", d.Log.Rotation.Enable)
	v.SetDefault("log.rotation.max_size_mb", d.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", d.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", d.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", d.Log.Rotation.Compress)

	return v
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".actionable", "config.yaml")
}

// GlobalDir returns the path to the global actionable directory
func GlobalDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".actionable")
}
