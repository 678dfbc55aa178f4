package main

import (
	"context"
	"errors"
	"fmt"

	nb2md "github.com/alnah/go-nb2md"
	"github.com/alnah/go-nb2md/internal/config"
	"github.com/alnah/go-nb2md/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadNotebook       = errors.New("failed to read notebook file")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteMarkdown      = errors.New("failed to write markdown file")
	ErrWritePreview       = errors.New("failed to write preview file")
	ErrWriteReport        = errors.New("failed to write debug report")
	ErrInvalidExtension   = errors.New("file must have .ipynb extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrValidationFailed   = errors.New("validation failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	title         string // Empty = derive per file from the notebook stem
	layout        string
	categories    string
	tags          []string
	toc           bool
	authorProfile bool
	date          string // Already resolved, used in default file names
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration: explicit flag, NB2MD_CONFIG, or defaults.
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Precedence: CLI flags > env vars > config file > defaults.
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	// Resolve "auto" date once for the entire batch.
	date, err := dateutil.ResolveDate(cfg.Post.Date, env.Now())
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	files, err := discoverNotebooks(inputPath, output, date)
	if err != nil {
		return fmt.Errorf("discovering notebooks: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no notebooks found in %s", inputPath)
	}

	params := &conversionParams{
		title:         flags.post.title,
		layout:        resolveValue(cfg.Post.Layout, nb2md.DefaultLayout),
		categories:    resolveValue(cfg.Post.Categories, nb2md.DefaultCategories),
		tags:          resolveTags(cfg.Post.Tags),
		toc:           resolveBool(cfg.Post.TOC, true) && !flags.post.noTOC,
		authorProfile: resolveBool(cfg.Post.AuthorProfile, false) || flags.post.authorProfile,
		date:          date,
	}

	workers := resolveWorkers(flags.workers, cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := convertBatch(ctx, workers, files, params)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.post.layout != "" {
		cfg.Post.Layout = flags.post.layout
	}
	if flags.post.categories != "" {
		cfg.Post.Categories = flags.post.categories
	}
	if len(flags.post.tags) > 0 {
		cfg.Post.Tags = flags.post.tags
	}
	if flags.post.date != "" {
		cfg.Post.Date = flags.post.date
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveValue returns the config value or a fallback when unset.
func resolveValue(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// resolveTags returns the configured tags or the library defaults.
func resolveTags(tags []string) []string {
	if len(tags) > 0 {
		return tags
	}
	return nb2md.DefaultTags()
}

// resolveBool returns the configured value or a fallback when unset.
func resolveBool(value *bool, fallback bool) bool {
	if value != nil {
		return *value
	}
	return fallback
}
