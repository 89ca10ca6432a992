// Package runoff2tex translates DEC RUNOFF (DSR) documentation source to LaTeX.
//
// # Quick Start
//
// Create a service and translate a stream:
//
//	svc := runoff2tex.New()
//	err := svc.Translate(ctx, os.Stdin, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The translation is single-pass and streaming: input is consumed line by
// line and output fragments are written in input order, so memory stays
// bounded on arbitrarily large documents.
//
// # Translation Pipeline
//
// The engine is composed of three stages:
//
//  1. Line reading (terminator normalization, directive/text classification)
//  2. Directive interpretation (command table, document state, structure)
//  3. Inline translation (flag characters, case latching, LaTeX escaping)
//
// # Configuration
//
// Use functional options to customize the translator:
//
//	svc := runoff2tex.New(
//	    runoff2tex.WithDocumentClass("report"),
//	    runoff2tex.WithPreamble(`\usepackage[T1]{fontenc}`),
//	    runoff2tex.WithUnknownDirectivePolicy(runoff2tex.DropUnknown),
//	)
//
// File imports via the .REQ directive need a FileResolver; without one the
// directive is marked in the output and skipped:
//
//	svc := runoff2tex.New(runoff2tex.WithFileResolver(resolver))
//
// # Error Policy
//
// The translator is best-effort. Unknown directives, malformed
// arguments, and unterminated blocks never abort a run; only I/O failures on
// the source or sink are fatal. The output is a starting point for manual
// correction, not a guaranteed-compiling LaTeX document.
//
// # Legacy Case-Shift Latching
//
// The historical tool's uppercase/lowercase latch is known to leak: the
// unlatch sequence is consumed as two one-shot shifts and never clears an
// active latch, and latch state persists across lines. This behavior is
// preserved by default for parity with existing documents. Use
// WithCaseLatchFix to make the unlatch sequence effective and to reset latch
// state at every directive boundary.
package runoff2tex
