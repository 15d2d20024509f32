// Package testutil provides helpers shared by appalias tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempDir creates a temporary directory for tests and returns its path.
// The directory is automatically cleaned up when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// CreateAppBundle creates a minimal .app bundle directory tree with the
// given Info.plist content and returns the bundle path. Pass an empty plist
// to skip writing the manifest.
func CreateAppBundle(t *testing.T, parent, name, infoPlist string) string {
	t.Helper()

	bundle := filepath.Join(parent, name)
	resources := filepath.Join(bundle, "Contents", "Resources")
	if err := os.MkdirAll(resources, 0755); err != nil {
		t.Fatalf("Failed to create bundle tree %s: %v", resources, err)
	}

	if infoPlist != "" {
		CreateFile(t, filepath.Join(bundle, "Contents"), "Info.plist", infoPlist)
	}

	return bundle
}
