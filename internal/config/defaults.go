package config

import (
	"os"
	"time"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			DBPath: "~/.actionable/tasks.db",
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Identity: IdentityConfig{
			Timeout: 10 * time.Second,
		},
		Tasks: TasksConfig{
			Locale:        "en",
			Timezone:      "Local",
			UpcomingLimit: 5,
			DefaultSort:   "dueDate",
			DefaultOrder:  "asc",
		},
		Auth: AuthConfig{
			ListenWindow: 5 * time.Second,
		},
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				MaxSizeMB:  50,
				MaxBackups: 3,
				MaxAgeDays: 28,
				Compress:   true,
			},
		},
	}
}

// WriteDefault writes the default configuration template to a file
func WriteDefault(path string) error {
	content := `# actionable configuration
version: "1"

# Task and profile database
storage:
  db_path: ~/.actionable/tasks.db

# HTTP API (actionable serve)
server:
  addr: ":8080"
  mode: release  # debug, release or test

# Identity provider (GoTrue-compatible, e.g. https://<project>.supabase.co/auth/v1)
identity:
  base_url: ""
  api_key: ""
  # code_verifier: ""  # PKCE verifier for authorization-code callbacks
  timeout: 10s

# Task query defaults
tasks:
  locale: en          # collation for title/category sorting
  timezone: Local     # defines midnight for today/tomorrow/overdue
  upcoming_limit: 5
  default_sort: dueDate
  default_order: asc

# Auth callback handling
auth:
  # How long to wait for a callback URL before giving up
  listen_window: 5s

# Logging
log:
  level: info
  format: console  # console or json
  outputs: [stderr]
  rotation:
    enable: false
    max_size_mb: 50
    max_backups: 3
    max_age_days: 28
    compress: true
`
	return os.WriteFile(path, []byte(content), 0644)
}
