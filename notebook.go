package nb2md

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cell type constants.
const (
	CellTypeMarkdown = "markdown"
	CellTypeCode     = "code"
)

// Output type constants.
const (
	OutputTypeStream        = "stream"
	OutputTypeExecuteResult = "execute_result"
	OutputTypeDisplayData   = "display_data"
	OutputTypeError         = "error"
)

// SourceText holds a notebook text field that may appear in the JSON as a
// single string or as a list of string fragments. Fragments are joined by
// plain concatenation with no added separators, so the normalized text is
// byte-identical to what the notebook recorded.
//
// This is the single coercion point for every loosely-typed text field
// (cell source, stream text, data payloads); callers never branch on the
// wire representation themselves.
type SourceText struct {
	text string
	list bool
}

// UnmarshalJSON accepts either a JSON string or a JSON array of strings.
func (s *SourceText) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.text = single
		s.list = false
		return nil
	}

	var fragments []string
	if err := json.Unmarshal(data, &fragments); err != nil {
		return fmt.Errorf("text field must be a string or a list of strings: %w", err)
	}
	s.text = strings.Join(fragments, "")
	s.list = true
	return nil
}

// MarshalJSON emits the normalized string form.
func (s SourceText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.text)
}

// String returns the normalized text.
func (s SourceText) String() string {
	return s.text
}

// IsList reports whether the JSON carried a fragment list rather than a
// single string. Diagnostics use this to localize encoding discrepancies.
func (s SourceText) IsList() bool {
	return s.list
}

// Notebook is an ordered sequence of cells parsed from an .ipynb document.
// Cell order is the only ordering signal; cell IDs are never consulted.
type Notebook struct {
	Cells []Cell `json:"cells"`
}

// Cell is one unit of a notebook: prose (markdown) or code with its
// recorded outputs. Outputs is only populated for code cells.
type Cell struct {
	CellType string     `json:"cell_type"`
	Source   SourceText `json:"source"`
	Outputs  []Output   `json:"outputs"`
}

// Output is one recorded result of executing a code cell.
// Text is set for stream outputs, Data for execute_result/display_data,
// and Traceback for error outputs.
type Output struct {
	OutputType string                `json:"output_type"`
	Text       SourceText            `json:"text"`
	Data       map[string]SourceText `json:"data"`
	Traceback  []string              `json:"traceback"`
}

// ParseNotebook parses raw .ipynb JSON into a Notebook.
// A document without a "cells" field yields an empty notebook, not an error.
// Malformed JSON returns an error wrapping ErrNotebookParse.
func ParseNotebook(data []byte) (*Notebook, error) {
	if len(data) == 0 {
		return nil, ErrEmptyNotebook
	}

	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotebookParse, err)
	}
	if nb.Cells == nil {
		nb.Cells = []Cell{}
	}
	return &nb, nil
}
