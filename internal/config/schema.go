package config

import "time"

// Config represents the full actionable configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Task and profile database
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// HTTP API
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Identity provider used to resolve auth callbacks
	Identity IdentityConfig `yaml:"identity" mapstructure:"identity"`

	// Task query defaults
	Tasks TasksConfig `yaml:"tasks" mapstructure:"tasks"`

	// Auth callback handling
	Auth AuthConfig `yaml:"auth" mapstructure:"auth"`

	// Logging
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StorageConfig configures the SQLite store
type StorageConfig struct {
	DBPath string `yaml:"db_path" mapstructure:"db_path"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
	// Mode is the gin mode: debug, release or test
	Mode string `yaml:"mode" mapstructure:"mode"`
}

// IdentityConfig configures the GoTrue-compatible identity client
type IdentityConfig struct {
	BaseURL      string        `yaml:"base_url" mapstructure:"base_url"`
	APIKey       string        `yaml:"api_key" mapstructure:"api_key"`
	CodeVerifier string        `yaml:"code_verifier,omitempty" mapstructure:"code_verifier"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// TasksConfig holds task query defaults
type TasksConfig struct {
	// Locale is a BCP 47 tag used for title and category collation
	Locale string `yaml:"locale" mapstructure:"locale"`
	// Timezone is an IANA zone name or "Local"; it defines day boundaries
	Timezone      string `yaml:"timezone" mapstructure:"timezone"`
	UpcomingLimit int    `yaml:"upcoming_limit" mapstructure:"upcoming_limit"`
	DefaultSort   string `yaml:"default_sort" mapstructure:"default_sort"`
	DefaultOrder  string `yaml:"default_order" mapstructure:"default_order"`
}

// AuthConfig configures callback handling
type AuthConfig struct {
	// ListenWindow bounds how long to wait for a callback URL event
	ListenWindow time.Duration `yaml:"listen_window" mapstructure:"listen_window"`
}

// LogConfig defines logger settings
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `yaml:"level" mapstructure:"level"`
	// Format: console or json
	Format string `yaml:"format" mapstructure:"format"`
	// Outputs: stdout, stderr, or file paths
	Outputs     []string       `yaml:"outputs" mapstructure:"outputs"`
	Rotation    RotationConfig `yaml:"rotation" mapstructure:"rotation"`
	Development bool           `yaml:"development" mapstructure:"development"`
}

// RotationConfig controls rotation for file outputs
type RotationConfig struct {
	Enable     bool `yaml:"enable" mapstructure:"enable"`
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}
