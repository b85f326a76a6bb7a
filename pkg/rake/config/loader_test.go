package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderWithStoplist(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "stoplist.yaml")

	content := `terms:
  - The
  - and
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loader := Loader{StoplistPath: path}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !comp.StopWords.Contains("the") {
		t.Error("expected case-normalized stopword 'the'")
	}
	if !comp.StopWords.Contains("and") {
		t.Error("expected stopword 'and'")
	}
}

func TestLoaderWithoutStoplist(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if comp.StopWords.Len() != 0 {
		t.Errorf("expected empty stopword set, got %d entries", comp.StopWords.Len())
	}
}

func TestLoaderMissingStoplist(t *testing.T) {
	loader := Loader{StoplistPath: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, err := loader.Load(); err == nil {
		t.Error("expected error for missing stoplist file")
	}
}
