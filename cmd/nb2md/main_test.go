package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testNotebook = `{
	"cells": [
		{"cell_type": "markdown", "source": "# Hello"},
		{"cell_type": "code", "source": "print(\"hi\")", "outputs": [
			{"output_type": "stream", "text": "hi\n"}
		]}
	]
}`

// testEnv returns an Environment with captured output and a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

func TestRunMainUsage(t *testing.T) {
	t.Parallel()

	t.Run("no command", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := runMain([]string{"nb2md"}, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Usage") {
			t.Errorf("stderr = %q, want usage text", stderr.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		if code := runMain([]string{"nb2md", "frobnicate"}, env); code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "Unknown command: frobnicate") {
			t.Errorf("stderr = %q, want unknown command message", stderr.String())
		}
	})
}

func TestRunMainVersion(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := runMain([]string{"nb2md", "version"}, env); code != ExitSuccess {
		t.Errorf("runMain() = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "go-nb2md") {
		t.Errorf("stdout = %q, want version string", stdout.String())
	}
}

func TestRunMainHelp(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := runMain([]string{"nb2md", "help"}, env); code != ExitSuccess {
		t.Errorf("runMain() = %d, want %d", code, ExitSuccess)
	}
	if !strings.Contains(stdout.String(), "convert") {
		t.Errorf("stdout = %q, want command list", stdout.String())
	}
}

func TestRunMainConvert(t *testing.T) {
	dir := t.TempDir()
	nbPath := writeFile(t, dir, "hello-world.ipynb", testNotebook)
	outPath := filepath.Join(dir, "out.md")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"nb2md", "convert", nbPath, "-o", outPath}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Created "+outPath) {
		t.Errorf("stdout = %q, want created message", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	expected := "---\n" +
		"layout: single\n" +
		"title: \"Hello World\"\n" +
		"categories: coding\n" +
		"tag: ['python', 'jupyter']\n" +
		"toc: true\n" +
		"author_profile: false\n" +
		"---\n" +
		"\n" +
		"# Hello\n" +
		"\n" +
		"```python\n" +
		"print(\"hi\")\n" +
		"```\n" +
		"\n" +
		"```\n" +
		"hi\n" +
		"```\n"

	if got := string(content); got != expected {
		t.Errorf("post = %q, want %q", got, expected)
	}
}

func TestRunMainConvertDefaultName(t *testing.T) {
	dir := t.TempDir()
	nbPath := writeFile(t, dir, "analysis.ipynb", testNotebook)

	env, _, stderr := testEnv()
	code := runMain([]string{"nb2md", "convert", nbPath, "-o", dir, "--title", "T", "--date", "2026-01-02"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}

	want := filepath.Join(dir, "2026-01-02-analysis.md")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected post at %s: %v", want, err)
	}
}

func TestRunMainConvertErrors(t *testing.T) {
	t.Run("missing notebook", func(t *testing.T) {
		env, _, _ := testEnv()
		code := runMain([]string{"nb2md", "convert", filepath.Join(t.TempDir(), "nope.ipynb")}, env)
		if code != ExitIO {
			t.Errorf("runMain() = %d, want %d", code, ExitIO)
		}
	})

	t.Run("no input", func(t *testing.T) {
		env, _, _ := testEnv()
		if code := runMain([]string{"nb2md", "convert"}, env); code != ExitIO {
			t.Errorf("runMain() = %d, want %d", code, ExitIO)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		dir := t.TempDir()
		nbPath := writeFile(t, dir, "a.ipynb", testNotebook)

		env, _, _ := testEnv()
		code := runMain([]string{"nb2md", "convert", nbPath, "--date", "tomorrow"}, env)
		if code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("bad worker count", func(t *testing.T) {
		env, _, _ := testEnv()
		code := runMain([]string{"nb2md", "convert", "x.ipynb", "--workers", "100"}, env)
		if code != ExitUsage {
			t.Errorf("runMain() = %d, want %d", code, ExitUsage)
		}
	})

	t.Run("malformed notebook fails conversion", func(t *testing.T) {
		dir := t.TempDir()
		nbPath := writeFile(t, dir, "bad.ipynb", "{not json")

		env, _, stderr := testEnv()
		code := runMain([]string{"nb2md", "convert", nbPath, "-o", filepath.Join(dir, "out.md")}, env)
		if code != ExitGeneral {
			t.Errorf("runMain() = %d, want %d", code, ExitGeneral)
		}
		if !strings.Contains(stderr.String(), "FAILED") {
			t.Errorf("stderr = %q, want FAILED line", stderr.String())
		}
	})
}

func TestRunMainConvertBatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ipynb", testNotebook)
	writeFile(t, dir, "b.ipynb", testNotebook)
	outDir := filepath.Join(dir, "posts")

	env, stdout, stderr := testEnv()
	code := runMain([]string{"nb2md", "convert", dir, "-o", outDir, "--title", "T", "--workers", "2"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want %d (stderr: %s)", code, ExitSuccess, stderr.String())
	}
	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want batch summary", stdout.String())
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2", len(entries))
	}
}

func TestRunMainValidate(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := writeFile(t, dir, "post.md",
			"![output](data:image/png;base64,iVBORw0KGgo=)\n")

		env, stdout, _ := testEnv()
		if code := runMain([]string{"nb2md", "validate", mdPath}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		for _, want := range []string{"Total images: 1", "Valid: 1", "Invalid: 0", "All images are valid"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("stdout = %q, missing %q", stdout.String(), want)
			}
		}
	})

	t.Run("invalid post exits non-zero", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := writeFile(t, dir, "post.md",
			"![output](data:image/png;base64,AAAA)\n")

		env, stdout, stderr := testEnv()
		if code := runMain([]string{"nb2md", "validate", mdPath}, env); code != ExitGeneral {
			t.Fatalf("runMain() = %d, want %d", code, ExitGeneral)
		}
		if !strings.Contains(stdout.String(), "Image 1: Invalid PNG header") {
			t.Errorf("stdout = %q, missing error detail", stdout.String())
		}
		if !strings.Contains(stderr.String(), "1 invalid image(s)") {
			t.Errorf("stderr = %q, missing failure summary", stderr.String())
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		env, _, _ := testEnv()
		if code := runMain([]string{"nb2md", "validate"}, env); code != ExitIO {
			t.Errorf("runMain() = %d, want %d", code, ExitIO)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		env, _, _ := testEnv()
		code := runMain([]string{"nb2md", "validate", filepath.Join(t.TempDir(), "nope.md")}, env)
		if code != ExitIO {
			t.Errorf("runMain() = %d, want %d", code, ExitIO)
		}
	})

	t.Run("preview written next to post", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := writeFile(t, dir, "post.md", "# Heading\n")

		env, stdout, _ := testEnv()
		if code := runMain([]string{"nb2md", "validate", mdPath, "--preview"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}

		previewPath := filepath.Join(dir, "post_preview.html")
		if !strings.Contains(stdout.String(), "Preview written to "+previewPath) {
			t.Errorf("stdout = %q, missing preview message", stdout.String())
		}
		html, err := os.ReadFile(previewPath)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !strings.Contains(string(html), "Heading") {
			t.Error("preview missing rendered body")
		}
	})
}

func TestRunMainDebug(t *testing.T) {
	t.Run("text report", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := writeFile(t, dir, "post.md",
			"![output](data:image/png;base64,AAAA)\n")
		reportPath := filepath.Join(dir, "report.txt")

		env, stdout, _ := testEnv()
		code := runMain([]string{"nb2md", "debug", mdPath, "-o", reportPath}, env)
		if code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "Debug report written to "+reportPath) {
			t.Errorf("stdout = %q, missing report message", stdout.String())
		}

		report, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		for _, want := range []string{
			"nb2md debug report",
			"[WARN] No front matter detected",
			"Header does not match PNG signature",
			"Issue template",
		} {
			if !strings.Contains(string(report), want) {
				t.Errorf("report missing %q", want)
			}
		}
	})

	t.Run("default report path", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := writeFile(t, dir, "post.md", "# x\n")

		env, _, _ := testEnv()
		if code := runMain([]string{"nb2md", "debug", mdPath}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		if _, err := os.Stat(filepath.Join(dir, "post_debug_report.txt")); err != nil {
			t.Errorf("default report missing: %v", err)
		}
	})

	t.Run("json output", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := writeFile(t, dir, "post.md", "# x\n")

		env, stdout, _ := testEnv()
		if code := runMain([]string{"nb2md", "debug", mdPath, "--json"}, env); code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}
		for _, want := range []string{`"report_id"`, `"system"`, `"artifact"`} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("json output missing %s", want)
			}
		}
	})

	t.Run("notebook cross-reference", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := writeFile(t, dir, "post.md", "# x\n")
		nbPath := writeFile(t, dir, "post.ipynb", `{
			"cells": [
				{"cell_type": "code", "source": "plot()", "outputs": [
					{"output_type": "display_data", "data": {"image/png": "iVBORw0KGgo="}}
				]}
			]
		}`)
		reportPath := filepath.Join(dir, "report.txt")

		env, _, _ := testEnv()
		code := runMain([]string{"nb2md", "debug", mdPath, "--notebook", nbPath, "-o", reportPath}, env)
		if code != ExitSuccess {
			t.Fatalf("runMain() = %d, want %d", code, ExitSuccess)
		}

		report, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !strings.Contains(string(report), "Notebook cross-reference") {
			t.Error("report missing notebook cross-reference section")
		}
		if !strings.Contains(string(report), "Cell 0: single-string payload") {
			t.Error("report missing PNG output detail")
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		env, _, _ := testEnv()
		if code := runMain([]string{"nb2md", "debug"}, env); code != ExitIO {
			t.Errorf("runMain() = %d, want %d", code, ExitIO)
		}
	})
}
