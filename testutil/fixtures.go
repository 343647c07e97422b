// Package testutil provides utilities for testing against settings files.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/scopeconf"
)

// TempPaths returns a Paths triple rooted in a fresh temporary directory,
// using the conventional settings file layout. None of the files exist yet.
func TempPaths(t *testing.T) scopeconf.Paths {
	t.Helper()

	dir := t.TempDir()
	return scopeconf.Paths{
		User:    filepath.Join(dir, "home", ".config", "app", "settings.yaml"),
		Project: filepath.Join(dir, "repo", ".app", "settings.yaml"),
		Local:   filepath.Join(dir, "repo", ".app", "settings.local.yaml"),
	}
}

// WriteSettings marshals a settings document as YAML and writes it to path on
// the given filesystem, creating parent directories.
func WriteSettings(t *testing.T, fs afero.Fs, path string, doc map[string]any) {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("failed to marshal settings for %s: %v", path, err)
	}
	WriteSettingsRaw(t, fs, path, data)
}

// WriteSettingsRaw writes raw file content to path on the given filesystem,
// creating parent directories. Useful for malformed-file fixtures.
func WriteSettingsRaw(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		t.Fatalf("failed to write settings file %s: %v", path, err)
	}
}

// ReadSettings reads and unmarshals a YAML settings document from path.
func ReadSettings(t *testing.T, fs afero.Fs, path string) map[string]any {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read settings file %s: %v", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("failed to parse settings file %s: %v", path, err)
	}
	return doc
}
