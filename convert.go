package nb2md

import (
	"context"
	"fmt"
	"strings"
)

// Input contains conversion parameters.
type Input struct {
	Notebook []byte       // Raw .ipynb JSON (required)
	Front    *FrontMatter // Front matter (nil = defaults with empty title)
}

// ConvertResult holds the outcome of one conversion.
type ConvertResult struct {
	Markdown []byte // The assembled post, front matter included
	Cells    int    // Cells processed
	Images   int    // Embedded base64 images emitted
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	front FrontMatter
}

// WithFrontMatter sets the default front matter applied when Input.Front
// is nil.
func WithFrontMatter(front FrontMatter) Option {
	return func(c *Converter) {
		c.cfg.front = front
	}
}

// Converter turns notebook documents into self-contained Jekyll Markdown
// posts. It is stateless across calls and safe for sequential reuse.
// Create with NewConverter and call Convert per document.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter with default configuration.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{front: DefaultFrontMatter("")},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert parses the notebook, renders every cell in order, and assembles
// the final Markdown document. The context is checked between pipeline
// stages; conversion either fully succeeds or fails with no partial result.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(input.Notebook) == 0 {
		return nil, ErrEmptyNotebook
	}

	front := c.cfg.front
	if input.Front != nil {
		front = *input.Front
	}
	if err := front.Validate(); err != nil {
		return nil, err
	}

	nb, err := ParseNotebook(input.Notebook)
	if err != nil {
		return nil, fmt.Errorf("parsing notebook: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var blocks []string
	images := 0
	for _, cell := range nb.Cells {
		rendered := renderCell(cell)
		for _, block := range rendered {
			if strings.HasPrefix(block, "![output](data:image/") {
				images++
			}
		}
		blocks = append(blocks, rendered...)
	}

	doc := assembleDocument(front, blocks)
	return &ConvertResult{
		Markdown: []byte(doc),
		Cells:    len(nb.Cells),
		Images:   images,
	}, nil
}
