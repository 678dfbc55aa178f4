package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-nb2md/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string   // NB2MD_CONFIG: config file name or path
	OutputDir  string   // NB2MD_OUTPUT_DIR: default output directory
	Layout     string   // NB2MD_LAYOUT: Jekyll layout
	Categories string   // NB2MD_CATEGORIES: post categories
	Tags       []string // NB2MD_TAGS: comma-separated post tags
	Workers    int      // NB2MD_WORKERS: parallel workers
}

// knownEnvVars lists valid NB2MD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NB2MD_CONFIG":     true,
	"NB2MD_OUTPUT_DIR": true,
	"NB2MD_LAYOUT":     true,
	"NB2MD_CATEGORIES": true,
	"NB2MD_TAGS":       true,
	"NB2MD_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("NB2MD_CONFIG"),
		OutputDir:  os.Getenv("NB2MD_OUTPUT_DIR"),
		Layout:     os.Getenv("NB2MD_LAYOUT"),
		Categories: os.Getenv("NB2MD_CATEGORIES"),
	}

	if tags := os.Getenv("NB2MD_TAGS"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Tags = append(cfg.Tags, t)
			}
		}
	}

	if workers := os.Getenv("NB2MD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized NB2MD_* variables.
// Helps catch typos like NB2MD_CATEGORIE instead of NB2MD_CATEGORIES.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "NB2MD_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Layout != "" && cfg.Post.Layout == "" {
		cfg.Post.Layout = env.Layout
	}
	if env.Categories != "" && cfg.Post.Categories == "" {
		cfg.Post.Categories = env.Categories
	}
	if len(env.Tags) > 0 && len(cfg.Post.Tags) == 0 {
		cfg.Post.Tags = env.Tags
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
