// Package dateutil resolves post dates for Jekyll file naming.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date that is not "auto" or YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// PostDateLayout is the date format Jekyll expects in post file names.
const PostDateLayout = "2006-01-02"

// ResolveDate handles the "auto" syntax for post dates.
//   - "" or "auto" → the given time formatted as YYYY-MM-DD
//   - explicit YYYY-MM-DD → validated and returned unchanged
//   - anything else → ErrInvalidDate
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "auto") {
		return t.Format(PostDateLayout), nil
	}

	parsed, err := time.Parse(PostDateLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q (want YYYY-MM-DD or \"auto\")", ErrInvalidDate, value)
	}
	// Re-format to reject shorthand the parser tolerates but Jekyll does not.
	if got := parsed.Format(PostDateLayout); got != trimmed {
		return "", fmt.Errorf("%w: %q (want YYYY-MM-DD or \"auto\")", ErrInvalidDate, value)
	}
	return trimmed, nil
}

// PostFileName builds the Jekyll post file name for a notebook stem:
// YYYY-MM-DD-<stem>.md.
func PostFileName(date, stem string) string {
	return date + "-" + stem + ".md"
}
