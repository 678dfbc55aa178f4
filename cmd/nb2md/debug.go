package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	nb2md "github.com/alnah/go-nb2md"
	"github.com/alnah/go-nb2md/internal/fileutil"
)

// runDebug builds a diagnostic snapshot for a post and writes the report.
func runDebug(args []string, env *Environment) error {
	flags, positional, err := parseDebugFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printDebugUsage(env.Stderr)
		return ErrNoInput
	}

	mdPath := positional[0]
	content, err := os.ReadFile(mdPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	opts := nb2md.DiagnoseOptions{MarkdownPath: mdPath}
	if flags.notebook != "" {
		nbData, err := os.ReadFile(flags.notebook) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadNotebook, err)
		}
		nb, err := nb2md.ParseNotebook(nbData)
		if err != nil {
			return err
		}
		opts.Notebook = nb
		opts.NotebookPath = flags.notebook
	}

	snap := nb2md.Diagnose(content, opts)

	if flags.jsonOut {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	reportPath := flags.output
	if reportPath == "" {
		reportPath = filepath.Join(filepath.Dir(mdPath), fileutil.Stem(mdPath)+"_debug_report.txt")
	}

	var b strings.Builder
	formatDebugReport(&b, snap)
	// #nosec G306 -- reports are meant to be readable
	if err := os.WriteFile(reportPath, []byte(b.String()), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Debug report written to %s\n", reportPath)
	}
	return nil
}

// formatDebugReport renders the snapshot as a plain-text report with a
// trailing issue template ready to paste into a bug tracker.
func formatDebugReport(w io.Writer, snap *nb2md.DebugSnapshot) {
	fmt.Fprintln(w, "nb2md debug report")
	fmt.Fprintln(w, "==================")
	fmt.Fprintf(w, "Report ID: %s\n", snap.ReportID)
	fmt.Fprintf(w, "Generated: %s\n", snap.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if snap.MarkdownPath != "" {
		fmt.Fprintf(w, "Markdown: %s (%d bytes)\n", snap.MarkdownPath, snap.MarkdownSize)
	} else {
		fmt.Fprintf(w, "Markdown: %d bytes\n", snap.MarkdownSize)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  Platform: %s/%s\n", snap.System.OS, snap.System.Arch)
	fmt.Fprintf(w, "  Go: %s\n", snap.System.GoVersion)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Artifact")
	if snap.Artifact.HasFrontMatter {
		fmt.Fprintln(w, "  [OK] Front matter present")
		fmt.Fprintf(w, "  Title: %q\n", snap.Artifact.Title)
		fmt.Fprintf(w, "  Layout: %s\n", snap.Artifact.Layout)
	} else {
		fmt.Fprintln(w, "  [WARN] No front matter detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Images (%d found, lenient match)\n", len(snap.Images))
	for _, img := range snap.Images {
		fmt.Fprintf(w, "  Image %d (%s)\n", img.Ordinal, img.Format)
		fmt.Fprintf(w, "    Raw length: %d\n", img.RawLength)
		if img.HasWhitespace {
			fmt.Fprintln(w, "    [WARN] Token contains whitespace")
		}
		fmt.Fprintf(w, "    Head: %s\n", img.Head)
		fmt.Fprintf(w, "    Tail: %s\n", img.Tail)
		if img.DecodeOK {
			fmt.Fprintf(w, "    Decode: OK (%d bytes)\n", img.DecodedSize)
			fmt.Fprintf(w, "    First bytes: %s\n", img.FirstBytes)
			if img.HeaderOK {
				fmt.Fprintln(w, "    Header: OK")
			} else {
				fmt.Fprintf(w, "    [ERROR] Header does not match %s signature\n", strings.ToUpper(img.Format))
			}
		} else {
			fmt.Fprintf(w, "    [ERROR] Decode failed: %s\n", img.DecodeErr)
		}
	}
	fmt.Fprintln(w)

	if snap.Notebook != nil {
		fmt.Fprintf(w, "Notebook cross-reference (%s, %d cells)\n", snap.Notebook.Path, snap.Notebook.CellCount)
		if len(snap.Notebook.PNGOutputs) == 0 {
			fmt.Fprintln(w, "  No image/png outputs found")
		}
		for _, ref := range snap.Notebook.PNGOutputs {
			payload := "single-string"
			if ref.FragmentList {
				payload = "fragment-list"
			}
			newlines := "no newlines"
			if ref.HasNewline {
				newlines = "CONTAINS NEWLINES"
			}
			fmt.Fprintf(w, "  Cell %d: %s payload, %d chars, %s\n",
				ref.CellIndex, payload, ref.NormalizedLength, newlines)
		}
		fmt.Fprintln(w)
	}

	undecodable := 0
	badHeader := 0
	for _, img := range snap.Images {
		if !img.DecodeOK {
			undecodable++
		} else if !img.HeaderOK {
			badHeader++
		}
	}

	fmt.Fprintln(w, "Issue template")
	fmt.Fprintln(w, "--------------")
	fmt.Fprintf(w, "Report ID: %s\n", snap.ReportID)
	fmt.Fprintf(w, "Platform: %s/%s, %s\n", snap.System.OS, snap.System.Arch, snap.System.GoVersion)
	fmt.Fprintf(w, "Images: %d total, %d undecodable, %d with bad headers\n",
		len(snap.Images), undecodable, badHeader)
	fmt.Fprintln(w, "What I expected:")
	fmt.Fprintln(w, "What happened instead:")
	fmt.Fprintln(w, "Steps to reproduce:")
}
