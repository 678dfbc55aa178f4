// Package config loads and validates nb2md configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nb2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Generous, but bounded so a corrupted config file
// cannot inject megabytes into every generated front matter block.
const (
	MaxLayoutLength     = 50   // "single", "splash", custom layout names
	MaxTitleLength      = 200  // Post title
	MaxCategoriesLength = 100  // Category string
	MaxTagLength        = 50   // One tag
	MaxTagCount         = 20   // Tags per post
	MaxDateLength       = 30   // "2025-12-31" or "auto"
	MaxDirLength        = 4096 // Path limit on most filesystems
)

// Config holds all configuration for post generation.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Post    PostConfig   `yaml:"post"`
	Workers int          `yaml:"workers"` // Parallel workers for batch conversion (0 = auto)
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default notebook directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default post directory (empty = current directory)
}

// PostConfig defines front matter defaults for generated posts.
// TOC and AuthorProfile are pointers so "not set in config" is
// distinguishable from an explicit false.
type PostConfig struct {
	Layout        string   `yaml:"layout"`        // Jekyll layout (default: "single")
	Categories    string   `yaml:"categories"`    // Post categories (default: "coding")
	Tags          []string `yaml:"tags"`          // Post tags (default: python, jupyter)
	Date          string   `yaml:"date"`          // "auto" or YYYY-MM-DD (default: "auto")
	TOC           *bool    `yaml:"toc"`           // Table of contents flag (default: true)
	AuthorProfile *bool    `yaml:"authorProfile"` // Author profile flag (default: false)
}

// Validate checks field lengths and tag counts.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("post.layout", c.Post.Layout, MaxLayoutLength); err != nil {
		return err
	}
	if err := validateFieldLength("post.categories", c.Post.Categories, MaxCategoriesLength); err != nil {
		return err
	}
	if err := validateFieldLength("post.date", c.Post.Date, MaxDateLength); err != nil {
		return err
	}

	if len(c.Post.Tags) > MaxTagCount {
		return fmt.Errorf("post.tags: too many tags (%d, max %d)", len(c.Post.Tags), MaxTagCount)
	}
	for i, tag := range c.Post.Tags {
		if err := validateFieldLength(fmt.Sprintf("post.tags[%d]", i), tag, MaxTagLength); err != nil {
			return err
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers: must be >= 0, got %d", c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration. Front matter defaults are
// applied later during resolution, so unset here means "use the built-in".
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-nb2md/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-nb2md", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
