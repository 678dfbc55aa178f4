package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nb2md/internal/dateutil"
	"github.com/alnah/go-nb2md/internal/fileutil"
)

// MaxWorkers bounds the --workers flag.
const MaxWorkers = 32

// FileToConvert represents a single notebook to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverNotebooks finds all notebooks to convert and decides each
// output path up front. date is the already-resolved post date used in
// default Jekyll file names.
func discoverNotebooks(inputPath, output, date string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateNotebookExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, output, date),
		}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			// Skip checkpoint copies Jupyter drops next to every notebook.
			if d.Name() == ".ipynb_checkpoints" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".ipynb" {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, output, date),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the Markdown output path for a notebook.
// An output ending in ".md" is used as-is (single-file conversion only);
// otherwise output names a directory that receives the Jekyll post name
// YYYY-MM-DD-<stem>.md. Empty output means the current directory.
func resolveOutputPath(inputPath, output, date string) string {
	if strings.HasSuffix(output, ".md") {
		return output
	}
	name := dateutil.PostFileName(date, fileutil.Stem(inputPath))
	if output == "" {
		return name
	}
	return filepath.Join(output, name)
}

// validateNotebookExtension checks that the file has a .ipynb extension.
func validateNotebookExtension(path string) error {
	if ext := filepath.Ext(path); ext != ".ipynb" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
