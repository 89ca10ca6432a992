package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared with future subcommands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds LaTeX output shaping flags.
type outputFlags struct {
	documentClass string
	preamble      []string
}

// translateFlags holds all flags for the translator.
type translateFlags struct {
	common       commonFlags
	output       string
	tex          outputFlags
	unknown      string   // "mark" or "drop" ("" = config/default)
	fixCaseLatch bool
	flagChars    []string // ROLE=c bindings
	version      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show runtime details")
}

// addOutputFlags adds LaTeX output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVar(&f.documentClass, "document-class", "", "LaTeX document class (default: article)")
	fs.StringArrayVar(&f.preamble, "preamble", nil, "extra preamble line (repeatable)")
}

// parseFlags parses the command line and returns positional arguments.
func parseFlags(args []string) (*translateFlags, []string, error) {
	fs := flag.NewFlagSet("runoff2tex", flag.ContinueOnError)
	f := &translateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.unknown, "unknown", "", "unknown directive policy: mark, drop")
	fs.BoolVar(&f.fixCaseLatch, "fix-case-latch", false, "fix the legacy case-shift latch leak")
	fs.StringArrayVar(&f.flagChars, "flag-char", nil, "bind a flag character, ROLE=c (repeatable)")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.tex)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
