package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		flags, args, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want none", args)
		}
		if flags.output != "" || flags.unknown != "" || flags.fixCaseLatch {
			t.Errorf("flags = %+v, want zero values", flags)
		}
	})

	t.Run("all translation flags", func(t *testing.T) {
		flags, args, err := parseFlags([]string{
			"-o", "out.tex",
			"--document-class", "report",
			"--preamble", `\usepackage{a}`,
			"--preamble", `\usepackage{b}`,
			"--unknown", "drop",
			"--flag-char", "BOLD=*",
			"--fix-case-latch",
			"-q",
			"manual.rno",
		})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if flags.output != "out.tex" {
			t.Errorf("output = %q, want out.tex", flags.output)
		}
		if flags.tex.documentClass != "report" {
			t.Errorf("documentClass = %q, want report", flags.tex.documentClass)
		}
		if len(flags.tex.preamble) != 2 {
			t.Errorf("preamble = %v, want two lines", flags.tex.preamble)
		}
		if flags.unknown != "drop" || !flags.fixCaseLatch || !flags.common.quiet {
			t.Errorf("flags = %+v", flags)
		}
		if len(args) != 1 || args[0] != "manual.rno" {
			t.Errorf("args = %v, want [manual.rno]", args)
		}
	})

	t.Run("unknown flag errors", func(t *testing.T) {
		if _, _, err := parseFlags([]string{"--no-such-flag"}); err == nil {
			t.Error("parseFlags() = nil, want error")
		}
	})
}
