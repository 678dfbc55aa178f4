package nb2md

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-nb2md/internal/assets"
)

// ErrPreviewRender indicates HTML preview generation failed.
var ErrPreviewRender = errors.New("preview rendering failed")

// previewTemplate wraps the rendered body in a complete HTML5 document.
// The stylesheet is inlined so the preview stays a single file, like the
// posts it previews.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview: %s</title>
<style>
%s
</style>
</head>
<body>
<h1>Preview: %s</h1>
<hr>
%s
</body>
</html>`

// PreviewRenderer renders a generated post to a standalone HTML page so an
// operator can eyeball whether embedded images actually display. It proves
// nothing about rendering fidelity; validation is the validator's job.
type PreviewRenderer struct {
	md  goldmark.Markdown
	css string
}

// NewPreviewRenderer creates a PreviewRenderer with GFM extensions,
// syntax highlighting, and the embedded preview stylesheet.
func NewPreviewRenderer() (*PreviewRenderer, error) {
	css, err := assets.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading preview style: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, styled by the embedded stylesheet
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Posts carry raw notebook HTML (pandas tables, SVG) that must
			// pass through to the preview untouched.
			html.WithUnsafe(),
		),
	)

	return &PreviewRenderer{md: md, css: css}, nil
}

// Render converts post Markdown to a standalone HTML5 preview page.
// name appears in the page title, typically the artifact's file name.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *PreviewRenderer) Render(ctx context.Context, name, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if content == "" {
		return "", ErrEmptyMarkdown
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(stripFrontMatter(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, name, p.css, name, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// stripFrontMatter removes the leading front matter block so the preview
// does not render the metadata keys as a thematic break plus body text.
func stripFrontMatter(content string) string {
	if !strings.HasPrefix(content, "---\n") {
		return content
	}
	rest := content[len("---\n"):]
	idx := strings.Index(rest, "\n---\n")
	if idx < 0 {
		return content
	}
	return rest[idx+len("\n---\n"):]
}
