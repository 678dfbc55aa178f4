package nb2md

import (
	"fmt"
	"strings"
)

// Default front matter values for generated posts.
const (
	DefaultLayout     = "single"
	DefaultCategories = "coding"
)

// DefaultTags returns the default tag list for generated posts.
func DefaultTags() []string {
	return []string{"python", "jupyter"}
}

// FrontMatter holds the Jekyll front matter emitted at the top of every
// generated post. The key set and order are fixed; the downstream site
// generator consumes them as-is. Title and categories are written without
// escaping, so callers are responsible for values that would break YAML.
type FrontMatter struct {
	Layout        string
	Title         string
	Categories    string
	Tags          []string
	TOC           bool
	AuthorProfile bool
}

// DefaultFrontMatter returns front matter with the defaults used by the
// original publishing workflow: single layout, coding category, TOC on,
// author profile off.
func DefaultFrontMatter(title string) FrontMatter {
	return FrontMatter{
		Layout:        DefaultLayout,
		Title:         title,
		Categories:    DefaultCategories,
		Tags:          DefaultTags(),
		TOC:           true,
		AuthorProfile: false,
	}
}

// Validate checks that required fields are present.
func (f FrontMatter) Validate() error {
	if f.Title == "" {
		return ErrEmptyTitle
	}
	if f.Layout == "" {
		return ErrEmptyLayout
	}
	return nil
}

// Render serializes the front matter block between "---" delimiters.
// The trailing delimiter has no newline after it; the assembler owns
// block separation.
func (f FrontMatter) Render() string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "layout: %s\n", f.Layout)
	fmt.Fprintf(&b, "title: \"%s\"\n", f.Title)
	fmt.Fprintf(&b, "categories: %s\n", f.Categories)
	fmt.Fprintf(&b, "tag: %s\n", renderTagList(f.Tags))
	fmt.Fprintf(&b, "toc: %t\n", f.TOC)
	fmt.Fprintf(&b, "author_profile: %t\n", f.AuthorProfile)
	b.WriteString("---")
	return b.String()
}

// renderTagList renders tags in single-quoted flow form: ['a', 'b'].
// This matches the artifacts produced by the original workflow, which the
// site generator already accepts.
func renderTagList(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = "'" + t + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
