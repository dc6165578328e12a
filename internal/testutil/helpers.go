// Package testutil provides reusable test utilities for actionable tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home              string // Mocked HOME directory
	ProjectDir        string // Test project directory
	GlobalDir         string // ~/.actionable equivalent
	ProjectActionable string // .actionable in project
	t                 *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	globalDir := filepath.Join(tmpHome, ".actionable")
	projectDir := filepath.Join(tmpProject, ".actionable")

	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("Failed to create global .actionable: %v", err)
	}
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatalf("Failed to create project .actionable: %v", err)
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)

	return &TestEnv{
		Home:              tmpHome,
		ProjectDir:        tmpProject,
		GlobalDir:         globalDir,
		ProjectActionable: projectDir,
		t:                 t,
	}
}

// CreateFile creates a file with the given content. Relative paths are
// resolved against the project directory.
func (e *TestEnv) CreateFile(path, content string) string {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		e.t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
	return fullPath
}

// WriteConfig writes a config file under the project directory pointing the
// database into the temp tree and returns its path
func (e *TestEnv) WriteConfig(extra string) string {
	e.t.Helper()
	content := "version: \"1\"\nstorage:\n  db_path: " + e.DBPath() + "\nlog:\n  level: error\n" + extra
	return e.CreateFile(filepath.Join(e.ProjectActionable, "config.yaml"), content)
}

// DBPath returns the database path used by WriteConfig
func (e *TestEnv) DBPath() string {
	return filepath.Join(e.ProjectActionable, "tasks.db")
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}
	_, err := os.Stat(fullPath)
	return err == nil
}
