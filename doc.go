// Package nb2md converts Jupyter notebooks to self-contained Jekyll
// Markdown posts and validates the embedded base64 image data.
//
// # Quick Start
//
// Create a converter and convert a notebook:
//
//	conv := nb2md.NewConverter()
//	front := nb2md.DefaultFrontMatter("My Analysis")
//
//	result, err := conv.Convert(ctx, nb2md.Input{
//	    Notebook: notebookJSON,
//	    Front:    &front,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("2025-01-01-my-analysis.md", result.Markdown, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Notebook parsing (cells, outputs, string-or-fragment normalization)
//  2. Cell rendering (fenced code, stream output, display data, errors)
//  3. Document assembly (Jekyll front matter + blank-line separated blocks)
//
// Display outputs emit at most one representation per output, in fixed
// precedence: image/png, image/jpeg, image/svg+xml, text/html, text/plain.
// PNG and JPEG payloads become base64 data URIs so the post is a single
// self-contained file.
//
// # Validation
//
// An existing post can be validated independently of conversion:
//
//	report := nb2md.ValidateMarkdown(string(post))
//	if report.InvalidImages > 0 {
//	    for _, e := range report.Errors {
//	        fmt.Println(e)
//	    }
//	}
//
// Validation extracts every embedded image, decodes its base64 payload,
// and checks the PNG or JPEG magic bytes. One bad image never stops
// validation of the rest.
//
// # Diagnostics
//
// When a post's images fail to render, Diagnose builds a structured
// snapshot using a lenient extraction pattern that surfaces malformed
// tokens the validator's strict pattern would skip. Supplying the source
// notebook adds a cross-reference of its raw image payloads, localizing
// where corruption was introduced:
//
//	snap := nb2md.Diagnose(post, nb2md.DiagnoseOptions{
//	    MarkdownPath: "post.md",
//	    Notebook:     nb,
//	    NotebookPath: "analysis.ipynb",
//	})
package nb2md
