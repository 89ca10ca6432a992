package runoff2tex

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// Service orchestrates the RUNOFF-to-LaTeX pipeline.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithDocumentClass).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			documentClass: DefaultDocumentClass,
			flags:         defaultFlagChars(),
			warnings:      io.Discard,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate reads RUNOFF source from src and writes the LaTeX rendition to
// dst, single-pass. The context is checked between lines; a read failure of
// src or a write failure of dst aborts the run, nothing else does.
func (s *Service) Translate(ctx context.Context, src io.Reader, dst io.Writer) error {
	if src == nil {
		return ErrNilSource
	}
	if dst == nil {
		return ErrNilSink
	}
	if err := s.cfg.validate(); err != nil {
		return err
	}

	out := &emitter{w: bufio.NewWriter(dst)}
	interp := newInterpreter(s.cfg, out)

	out.line(`\documentclass{` + s.cfg.documentClass + `}`)
	out.line(`\usepackage{listings}`)
	for _, p := range s.cfg.preamble {
		out.line(p)
	}
	out.line(`\begin{document}`)

	lr := newLineReader(src)
	for out.err == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		l, err := lr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		interp.handleLine(l)
	}

	interp.finish()
	out.line(`\end{document}`)
	if out.err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, out.err)
	}
	if err := out.w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// validate checks configuration that cannot be applied safely. The document
// class is interpolated into \documentclass{...}, so it must not carry
// LaTeX syntax of its own.
func (c *serviceConfig) validate() error {
	if c.documentClass == "" {
		return fmt.Errorf("%w: empty", ErrInvalidDocumentClass)
	}
	for _, r := range c.documentClass {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidDocumentClass, c.documentClass)
		}
	}
	for ch := range c.flags {
		if ch == '.' {
			return fmt.Errorf("%w: %q collides with the directive prefix", ErrInvalidFlagChar, ch)
		}
	}
	return nil
}

// emitter writes output lines with a sticky error, so handlers never have
// to thread write errors through the dispatch path.
type emitter struct {
	w   *bufio.Writer
	err error
}

func (e *emitter) line(s string) {
	if e.err != nil {
		return
	}
	if _, err := e.w.WriteString(s); err != nil {
		e.err = err
		return
	}
	e.err = e.w.WriteByte('\n')
}
