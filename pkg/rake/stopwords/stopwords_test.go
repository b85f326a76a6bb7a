package stopwords

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromSlice(t *testing.T) {
	s := FromSlice([]string{"The", "and", "  of  ", ""})

	if s.Len() != 3 {
		t.Errorf("expected 3 stopwords, got %d", s.Len())
	}
	for _, w := range []string{"the", "and", "of"} {
		if !s.Contains(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
}

func TestContainsCaseInsensitive(t *testing.T) {
	s := FromSlice([]string{"the"})

	for _, w := range []string{"the", "The", "THE"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	if s.Contains("fox") {
		t.Error("Contains(fox) = true, want false")
	}
}

func TestFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "stopwords.txt")

	content := "the\nand\n\n# comment line\nOf\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}

	if s.Len() != 3 {
		t.Errorf("expected 3 stopwords, got %d", s.Len())
	}
	if !s.Contains("of") {
		t.Error("expected lowercased 'of' in set")
	}
}

func TestFromFileMissing(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMerge(t *testing.T) {
	a := FromSlice([]string{"the"})
	b := FromSlice([]string{"and"})

	merged := a.Merge(b)
	if !merged.Contains("the") || !merged.Contains("and") {
		t.Errorf("merged set missing words: %v", merged)
	}
}
