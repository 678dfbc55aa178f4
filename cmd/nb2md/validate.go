package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	nb2md "github.com/alnah/go-nb2md"
	"github.com/alnah/go-nb2md/internal/fileutil"
)

// runValidate validates embedded images in a Markdown post.
// The full report is always printed; a post with invalid images returns
// ErrValidationFailed so the process exits non-zero.
func runValidate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseValidateFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printValidateUsage(env.Stderr)
		return ErrNoInput
	}

	mdPath := positional[0]
	content, err := os.ReadFile(mdPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	report := nb2md.ValidateMarkdown(string(content))
	printValidationReport(mdPath, report, flags.common.quiet, flags.common.verbose, env)

	if flags.preview {
		previewPath, err := writePreview(ctx, mdPath, string(content))
		if err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Preview written to %s\n", previewPath)
		}
	}

	if report.InvalidImages > 0 {
		return fmt.Errorf("%w: %d invalid image(s)", ErrValidationFailed, report.InvalidImages)
	}
	return nil
}

// printValidationReport renders the report in the CLI's plain style.
func printValidationReport(path string, report *nb2md.ValidationReport, quiet, verbose bool, env *Environment) {
	if !quiet {
		fmt.Fprintf(env.Stdout, "Validating %s\n\n", path)
	}

	fmt.Fprintf(env.Stdout, "Total images: %d\n", report.TotalImages)
	fmt.Fprintf(env.Stdout, "Valid: %d\n", report.ValidImages)
	fmt.Fprintf(env.Stdout, "Invalid: %d\n", report.InvalidImages)

	if len(report.ImageSizes) > 0 && !quiet {
		fmt.Fprintf(env.Stdout, "Total size: %.2f KB\n", report.TotalSizeKB())
		fmt.Fprintf(env.Stdout, "Average size: %.2f KB\n", report.AverageSizeKB())
		if verbose {
			sizes := make([]string, len(report.ImageSizes))
			for i, s := range report.ImageSizes {
				sizes[i] = fmt.Sprintf("%.2f KB", s)
			}
			fmt.Fprintf(env.Stdout, "Image sizes: %s\n", strings.Join(sizes, ", "))
		}
	}

	if len(report.Errors) > 0 {
		fmt.Fprintln(env.Stdout, "\nErrors:")
		for _, e := range report.Errors {
			fmt.Fprintf(env.Stdout, "  - %s\n", e)
		}
	} else if !quiet {
		fmt.Fprintln(env.Stdout, "\nAll images are valid")
	}
}

// writePreview renders an HTML preview next to the post and returns its path.
func writePreview(ctx context.Context, mdPath, content string) (string, error) {
	renderer, err := nb2md.NewPreviewRenderer()
	if err != nil {
		return "", err
	}

	html, err := renderer.Render(ctx, filepath.Base(mdPath), content)
	if err != nil {
		return "", err
	}

	previewPath := filepath.Join(filepath.Dir(mdPath), fileutil.Stem(mdPath)+"_preview.html")
	// #nosec G306 -- previews are meant to be readable
	if err := os.WriteFile(previewPath, []byte(html), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWritePreview, err)
	}
	return previewPath, nil
}
