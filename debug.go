package nb2md

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"runtime"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/google/uuid"
)

// Diagnostic truncation limits.
const (
	diagTokenEdgeChars = 50 // First/last characters of the raw token kept for inspection
	diagFirstBytes     = 10 // Decoded bytes shown as hex
)

// DebugSnapshot is a structured troubleshooting snapshot of a Markdown
// artifact, optionally cross-referenced against its source notebook. It
// records observations, not a pass/fail verdict; a separate formatter
// turns it into a report.
type DebugSnapshot struct {
	GeneratedAt  time.Time         `json:"generated_at"`
	ReportID     string            `json:"report_id"`
	MarkdownPath string            `json:"markdown_path,omitempty"`
	MarkdownSize int               `json:"markdown_size"`
	System       SystemInfo        `json:"system"`
	Artifact     ArtifactInfo      `json:"artifact"`
	Images       []ImageDiagnostic `json:"images"`
	Notebook     *NotebookCrossRef `json:"notebook,omitempty"`
}

// SystemInfo identifies the environment that produced the snapshot.
type SystemInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	GoVersion string `json:"go_version"`
}

// ArtifactInfo records whether the artifact's front matter survived intact,
// separating header corruption from image corruption.
type ArtifactInfo struct {
	HasFrontMatter bool   `json:"has_front_matter"`
	Title          string `json:"title,omitempty"`
	Layout         string `json:"layout,omitempty"`
}

// ImageDiagnostic describes one leniently-matched embedded image.
// Head and Tail hold the first and last characters of the raw token for
// visual inspection; decode fields describe the token after stripping all
// whitespace.
type ImageDiagnostic struct {
	Ordinal       int    `json:"ordinal"`
	Format        string `json:"format"`
	RawLength     int    `json:"raw_length"`
	HasWhitespace bool   `json:"has_whitespace"`
	Head          string `json:"head"`
	Tail          string `json:"tail"`
	DecodeOK      bool   `json:"decode_ok"`
	DecodeErr     string `json:"decode_err,omitempty"`
	DecodedSize   int    `json:"decoded_size"`
	FirstBytes    string `json:"first_bytes,omitempty"`
	HeaderOK      bool   `json:"header_ok"`
}

// NotebookCrossRef records what the source notebook actually produced,
// so an operator can compare it against what ended up in the Markdown.
type NotebookCrossRef struct {
	Path       string         `json:"path,omitempty"`
	CellCount  int            `json:"cell_count"`
	PNGOutputs []PNGOutputRef `json:"png_outputs"`
}

// PNGOutputRef describes one image/png payload found in the notebook.
type PNGOutputRef struct {
	CellIndex        int  `json:"cell_index"`
	FragmentList     bool `json:"fragment_list"`
	NormalizedLength int  `json:"normalized_length"`
	HasNewline       bool `json:"has_newline"`
}

// DiagnoseOptions carries optional context for Diagnose.
type DiagnoseOptions struct {
	MarkdownPath string    // Recorded in the snapshot (informational)
	Notebook     *Notebook // Enables the notebook cross-reference
	NotebookPath string    // Recorded alongside the cross-reference
}

// Diagnose builds a DebugSnapshot for a Markdown artifact. Images are
// matched with the lenient pattern so malformed-but-present data is
// surfaced rather than skipped; diagnosing why an image did not render
// requires seeing the malformed token, not discarding it.
func Diagnose(markdown []byte, opts DiagnoseOptions) *DebugSnapshot {
	snap := &DebugSnapshot{
		GeneratedAt:  time.Now().UTC(),
		ReportID:     uuid.NewString(),
		MarkdownPath: opts.MarkdownPath,
		MarkdownSize: len(markdown),
		System: SystemInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			GoVersion: runtime.Version(),
		},
		Artifact: inspectArtifact(markdown),
	}

	for _, img := range extractImagesLenient(string(markdown)) {
		snap.Images = append(snap.Images, diagnoseImage(img))
	}

	if opts.Notebook != nil {
		snap.Notebook = crossReferenceNotebook(opts.Notebook, opts.NotebookPath)
	}

	return snap
}

// inspectArtifact parses the artifact's front matter, tolerating its
// absence. Parse failures are treated as "no front matter": the snapshot
// reports observations, it does not fail.
func inspectArtifact(markdown []byte) ArtifactInfo {
	var info ArtifactInfo
	if !bytes.HasPrefix(markdown, []byte("---\n")) && !bytes.HasPrefix(markdown, []byte("---\r\n")) {
		return info
	}

	var matter struct {
		Title  string `yaml:"title"`
		Layout string `yaml:"layout"`
	}
	if _, err := frontmatter.Parse(bytes.NewReader(markdown), &matter); err != nil {
		return info
	}

	info.HasFrontMatter = true
	info.Title = matter.Title
	info.Layout = matter.Layout
	return info
}

// diagnoseImage analyzes one leniently-matched image token.
func diagnoseImage(img EmbeddedImage) ImageDiagnostic {
	diag := ImageDiagnostic{
		Ordinal:       img.Ordinal,
		Format:        img.Format,
		RawLength:     len(img.Data),
		HasWhitespace: strings.ContainsAny(img.Data, " \t\n\r"),
		Head:          headChars(img.Data, diagTokenEdgeChars),
		Tail:          tailChars(img.Data, diagTokenEdgeChars),
	}

	stripped := stripWhitespace(img.Data)
	decoded, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		diag.DecodeErr = err.Error()
		return diag
	}

	diag.DecodeOK = true
	diag.DecodedSize = len(decoded)
	diag.FirstBytes = hex.EncodeToString(decoded[:min(len(decoded), diagFirstBytes)])
	diag.HeaderOK = headerMatches(img.Format, decoded)
	return diag
}

// headerMatches checks the decoded bytes against the declared format's
// magic signature.
func headerMatches(format string, decoded []byte) bool {
	switch format {
	case "png":
		return bytes.HasPrefix(decoded, pngSignature)
	case "jpeg", "jpg":
		return bytes.HasPrefix(decoded, jpegSignature)
	}
	return false
}

// crossReferenceNotebook walks code cell outputs and records every
// image/png payload the notebook carries.
func crossReferenceNotebook(nb *Notebook, path string) *NotebookCrossRef {
	ref := &NotebookCrossRef{
		Path:       path,
		CellCount:  len(nb.Cells),
		PNGOutputs: []PNGOutputRef{},
	}

	for i, cell := range nb.Cells {
		if cell.CellType != CellTypeCode {
			continue
		}
		for _, out := range cell.Outputs {
			payload, ok := out.Data["image/png"]
			if !ok {
				continue
			}
			text := payload.String()
			ref.PNGOutputs = append(ref.PNGOutputs, PNGOutputRef{
				CellIndex:        i,
				FragmentList:     payload.IsList(),
				NormalizedLength: len(text),
				HasNewline:       strings.ContainsAny(text, "\n\r"),
			})
		}
	}

	return ref
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

func headChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func tailChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
