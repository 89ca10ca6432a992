package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: runoff2tex [flags] [input]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Translate DEC RUNOFF (DSR) source to LaTeX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    RUNOFF source file (\"-\" or omitted = stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Translation:")
	fmt.Fprintln(w, "      --document-class <s>   LaTeX document class (default: article)")
	fmt.Fprintln(w, "      --preamble <line>      Extra preamble line (repeatable)")
	fmt.Fprintln(w, "      --unknown <policy>     Unknown directive policy: mark, drop")
	fmt.Fprintln(w, "      --flag-char <ROLE=c>   Bind an inline flag character (repeatable)")
	fmt.Fprintln(w, "                             Roles: UPPERCASE, LOWERCASE, ACCEPT,")
	fmt.Fprintln(w, "                             UNDERLINE, BOLD")
	fmt.Fprintln(w, "      --fix-case-latch       Fix the legacy case-shift latch leak")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnostics:")
	fmt.Fprintln(w, "  -q, --quiet                Suppress warnings")
	fmt.Fprintln(w, "  -v, --verbose              Show runtime details")
	fmt.Fprintln(w, "      --version              Show version and exit")
}
