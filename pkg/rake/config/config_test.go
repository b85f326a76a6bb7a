package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/rake/pkg/rake/internalerr"
)

func TestLoadStoplist(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "stoplist.yaml")

	content := `terms:
  - the
  - a
  - and
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}

	if len(sl.Terms) != 3 {
		t.Errorf("Expected 3 terms, got %d", len(sl.Terms))
	}

	expected := map[string]bool{"the": true, "a": true, "and": true}
	for _, term := range sl.Terms {
		if !expected[term] {
			t.Errorf("Unexpected term: %s", term)
		}
	}
}

func TestLoadStoplistMissingFile(t *testing.T) {
	if _, err := LoadStoplist(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadStoplistInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("terms: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadStoplist(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := `stoplist: stoplist.yaml
top_k: 15
db: runs.db
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StoplistPath != "stoplist.yaml" {
		t.Errorf("StoplistPath = %q", cfg.StoplistPath)
	}
	if cfg.TopK != 15 {
		t.Errorf("TopK = %d, want 15", cfg.TopK)
	}
	if cfg.DBPath != "runs.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
}

func TestLoadConfigNegativeTopK(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("top_k: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
