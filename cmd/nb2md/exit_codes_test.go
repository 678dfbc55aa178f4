package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	nb2md "github.com/alnah/go-nb2md"
	"github.com/alnah/go-nb2md/internal/config"
	"github.com/alnah/go-nb2md/internal/dateutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"read notebook", fmt.Errorf("%w: boom", ErrReadNotebook), ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write markdown", ErrWriteMarkdown, ExitIO},
		{"write preview", ErrWritePreview, ExitIO},
		{"write report", ErrWriteReport, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid date", dateutil.ErrInvalidDate, ExitUsage},
		{"empty title", nb2md.ErrEmptyTitle, ExitUsage},
		{"empty layout", nb2md.ErrEmptyLayout, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"validation failed", fmt.Errorf("%w: 2 invalid image(s)", ErrValidationFailed), ExitGeneral},
		{"notebook parse", nb2md.ErrNotebookParse, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
