package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2md <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert Jupyter notebooks to Jekyll Markdown posts")
	fmt.Fprintln(w, "  validate   Validate embedded base64 images in a post")
	fmt.Fprintln(w, "  debug      Write a diagnostic report for a post's images")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'nb2md help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2md convert <notebook.ipynb | dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Jupyter notebooks to Jekyll Markdown posts with all images")
	fmt.Fprintln(w, "embedded as base64 data URIs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Notebook file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Front matter:")
	fmt.Fprintln(w, "  -t, --title <s>           Post title (\"\" = derive from file name)")
	fmt.Fprintln(w, "      --layout <s>          Jekyll layout (default: single)")
	fmt.Fprintln(w, "      --categories <s>      Post categories (default: coding)")
	fmt.Fprintln(w, "      --tags <t1,t2>        Post tags (default: python,jupyter)")
	fmt.Fprintln(w, "      --date <s>            Post date: YYYY-MM-DD or \"auto\"")
	fmt.Fprintln(w, "      --no-toc              Disable table of contents")
	fmt.Fprintln(w, "      --author-profile      Enable author profile")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show cell/image counts and timing")
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2md validate <post.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validate embedded base64 images in a Markdown post. Exits non-zero")
	fmt.Fprintln(w, "when any image is invalid.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --preview             Write <stem>_preview.html next to the post")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-image sizes")
}

// printDebugUsage prints usage for the debug command.
func printDebugUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nb2md debug <post.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a diagnostic report for a post's embedded images, including")
	fmt.Fprintln(w, "malformed tokens that validation skips.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --notebook <path>     Cross-reference the source notebook")
	fmt.Fprintln(w, "  -o, --output <path>       Report path (default: <stem>_debug_report.txt)")
	fmt.Fprintln(w, "      --json                Emit the raw snapshot as JSON to stdout")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "validate":
		printValidateUsage(env.Stdout)
	case "debug":
		printDebugUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: nb2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: nb2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
