package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	nb2md "github.com/alnah/go-nb2md"
	"github.com/alnah/go-nb2md/internal/fileutil"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Cells      int
	Images     int
	Err        error
	Duration   time.Duration
}

// resolveWorkers determines the worker count for batch conversion.
// Priority: explicit flag > config > GOMAXPROCS-based calculation
// (adjusted by automaxprocs for containers).
func resolveWorkers(flagWorkers, cfgWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if cfgWorkers > 0 {
		return cfgWorkers
	}

	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// convertBatch processes notebooks concurrently with a bounded worker
// pool. Converters are stateless, so each worker owns its own instance.
func convertBatch(ctx context.Context, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := nb2md.NewConverter()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single notebook and returns the result.
func convertFile(ctx context.Context, conv *nb2md.Converter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadNotebook, err)
		result.Duration = time.Since(start)
		return result
	}

	title := params.title
	if title == "" {
		title = fileutil.TitleFromStem(fileutil.Stem(f.InputPath))
	}
	front := nb2md.FrontMatter{
		Layout:        params.layout,
		Title:         title,
		Categories:    params.categories,
		Tags:          params.tags,
		TOC:           params.toc,
		AuthorProfile: params.authorProfile,
	}

	converted, err := conv.Convert(ctx, nb2md.Input{Notebook: content, Front: &front})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Cells = converted.Cells
	result.Images = converted.Images

	if dir := filepath.Dir(f.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			result.Err = fmt.Errorf("creating output directory: %w", err)
			result.Duration = time.Since(start)
			return result
		}
	}

	// #nosec G306 -- posts are meant to be readable
	if err := os.WriteFile(f.OutputPath, converted.Markdown, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d cells, %d images, %v)\n",
				r.InputPath, r.OutputPath, r.Cells, r.Images, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
