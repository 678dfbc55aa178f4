package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// postFlags holds front matter flags for the convert command.
type postFlags struct {
	title         string
	layout        string
	categories    string
	tags          []string
	date          string
	noTOC         bool
	authorProfile bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	post    postFlags
}

// validateFlags holds all flags for the validate command.
type validateFlags struct {
	common  commonFlags
	preview bool
}

// debugFlags holds all flags for the debug command.
type debugFlags struct {
	common   commonFlags
	notebook string
	output   string
	jsonOut  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

// addPostFlags adds front matter flags to a FlagSet.
func addPostFlags(fs *flag.FlagSet, f *postFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "post title (\"\" = derive from file name)")
	fs.StringVar(&f.layout, "layout", "", "Jekyll layout (default: single)")
	fs.StringVar(&f.categories, "categories", "", "post categories (default: coding)")
	fs.StringSliceVar(&f.tags, "tags", nil, "post tags (default: python,jupyter)")
	fs.StringVar(&f.date, "date", "", "post date: YYYY-MM-DD or \"auto\" (default: auto)")
	fs.BoolVar(&f.noTOC, "no-toc", false, "disable table of contents")
	fs.BoolVar(&f.authorProfile, "author-profile", false, "enable author profile")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addPostFlags(fs, &f.post)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseValidateFlags parses validate command flags and returns positional args.
func parseValidateFlags(args []string) (*validateFlags, []string, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	f := &validateFlags{}

	fs.BoolVar(&f.preview, "preview", false, "write an HTML preview next to the post")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printValidateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDebugFlags parses debug command flags and returns positional args.
func parseDebugFlags(args []string) (*debugFlags, []string, error) {
	fs := flag.NewFlagSet("debug", flag.ContinueOnError)
	f := &debugFlags{}

	fs.StringVar(&f.notebook, "notebook", "", "source notebook for cross-reference")
	fs.StringVarP(&f.output, "output", "o", "", "report path (default: <stem>_debug_report.txt)")
	fs.BoolVar(&f.jsonOut, "json", false, "emit the raw snapshot as JSON to stdout")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printDebugUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
