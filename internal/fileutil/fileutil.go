// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// Stem returns the file name without directory or extension.
//
// Examples:
//   - "notes/my-analysis.ipynb" -> "my-analysis"
//   - "post.md" -> "post"
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TitleFromStem derives a human-readable post title from a file stem:
// hyphens and underscores become spaces, and each word is title-cased.
//
// Example: "my_data-analysis" -> "My Data Analysis".
func TitleFromStem(stem string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	words := strings.Fields(replaced)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
