package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "post.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(dir) {
		t.Errorf("FileExists(%q) = true for directory, want false", dir)
	}
	if FileExists(filepath.Join(dir, "missing.md")) {
		t.Error("FileExists() = true for missing file, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"notebooks/post.ipynb", true},
		{`notebooks\post.ipynb`, true},
		{"./config", true},
		{"config", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.expected {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"notes/my-analysis.ipynb", "my-analysis"},
		{"post.md", "post"},
		{"/abs/path/data_viz.ipynb", "data_viz"},
		{"noext", "noext"},
		{"archive.tar.gz", "archive.tar"},
	}

	for _, tt := range tests {
		if got := Stem(tt.input); got != tt.expected {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTitleFromStem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"my_data-analysis", "My Data Analysis"},
		{"hello", "Hello"},
		{"NLP_with_spaCy", "Nlp With Spacy"},
		{"a-b_c", "A B C"},
		{"--double--dashes--", "Double Dashes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleFromStem(tt.input); got != tt.expected {
			t.Errorf("TitleFromStem(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
