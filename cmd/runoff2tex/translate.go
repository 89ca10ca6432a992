package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	runoff2tex "github.com/alnah/go-runoff2tex"
	"github.com/alnah/go-runoff2tex/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrOpenInput      = errors.New("failed to open input file")
	ErrCreateOutput   = errors.New("failed to create output file")
	ErrBadFlagBinding = errors.New("invalid --flag-char binding")
	ErrBadPolicy      = errors.New("invalid --unknown policy")
)

// filePermissions for created output files: rw-r--r--.
const filePermissions = 0o644

// validFlagRoles are the roles accepted by --flag-char and config bindings.
var validFlagRoles = map[string]bool{
	runoff2tex.FlagUppercase: true,
	runoff2tex.FlagLowercase: true,
	runoff2tex.FlagAccept:    true,
	runoff2tex.FlagUnderline: true,
	runoff2tex.FlagBold:      true,
}

// runTranslate orchestrates one translation run.
func runTranslate(args []string, flags *translateFlags) error {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	opts, err := buildOptions(cfg, flags)
	if err != nil {
		return err
	}

	src, baseDir, closeSrc, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeSrc()

	dst, closeDst, err := openOutput(flags.output)
	if err != nil {
		return err
	}

	opts = append(opts, runoff2tex.WithFileResolver(&osFileResolver{base: baseDir}))
	if !flags.common.quiet {
		opts = append(opts, runoff2tex.WithWarnings(os.Stderr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.common.verbose {
		fmt.Fprintln(os.Stderr, "Starting translation...")
	}

	svc := runoff2tex.New(opts...)
	if err := svc.Translate(ctx, src, dst); err != nil {
		closeDst()
		return err
	}
	return closeDst()
}

// buildOptions merges config-file settings and CLI flags (CLI wins) into
// service options.
func buildOptions(cfg *config.Config, flags *translateFlags) ([]runoff2tex.Option, error) {
	var opts []runoff2tex.Option

	class := cfg.Output.DocumentClass
	if flags.tex.documentClass != "" {
		class = flags.tex.documentClass
	}
	if class != "" {
		opts = append(opts, runoff2tex.WithDocumentClass(class))
	}

	if len(cfg.Output.Preamble) > 0 {
		opts = append(opts, runoff2tex.WithPreamble(cfg.Output.Preamble...))
	}
	if len(flags.tex.preamble) > 0 {
		opts = append(opts, runoff2tex.WithPreamble(flags.tex.preamble...))
	}

	policy := cfg.Directives.UnknownPolicy
	if flags.unknown != "" {
		policy = flags.unknown
	}
	switch policy {
	case "", config.PolicyMark:
		// default
	case config.PolicyDrop:
		opts = append(opts, runoff2tex.WithUnknownDirectivePolicy(runoff2tex.DropUnknown))
	default:
		return nil, fmt.Errorf("%w: %q (must be mark or drop)", ErrBadPolicy, policy)
	}

	if cfg.Inline.FixCaseLatch || flags.fixCaseLatch {
		opts = append(opts, runoff2tex.WithCaseLatchFix())
	}

	for role, ch := range cfg.Inline.Flags {
		opts = append(opts, runoff2tex.WithFlagChar(strings.ToUpper(role), []rune(ch)[0]))
	}
	for _, binding := range flags.flagChars {
		role, c, err := parseFlagBinding(binding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, runoff2tex.WithFlagChar(role, c))
	}

	return opts, nil
}

// parseFlagBinding parses a ROLE=c binding from --flag-char.
func parseFlagBinding(s string) (string, rune, error) {
	role, char, ok := strings.Cut(s, "=")
	role = strings.ToUpper(strings.TrimSpace(role))
	if !ok || role == "" {
		return "", 0, fmt.Errorf("%w: %q (want ROLE=c)", ErrBadFlagBinding, s)
	}
	if !validFlagRoles[role] {
		return "", 0, fmt.Errorf("%w: unknown role %q", ErrBadFlagBinding, role)
	}
	runes := []rune(char)
	if len(runes) != 1 {
		return "", 0, fmt.Errorf("%w: %q (flag must be a single character)", ErrBadFlagBinding, s)
	}
	return role, runes[0], nil
}

// openInput opens the positional input argument, defaulting to stdin.
// The returned base directory anchors relative .REQ imports.
func openInput(args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, ".", func() {}, nil
	}
	path := args[0]
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, "", nil, fmt.Errorf("%w: %v", ErrOpenInput, err)
	}
	return f, filepath.Dir(path), func() { _ = f.Close() }, nil
}

// openOutput opens the output target, defaulting to stdout.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions) // #nosec G304 -- output path is user-provided
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}
	closed := false
	return f, func() error {
		if closed {
			return nil
		}
		closed = true
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOutput, err)
		}
		return nil
	}, nil
}

// osFileResolver resolves .REQ imports against the input file's directory.
type osFileResolver struct {
	base string
}

func (r *osFileResolver) ReadFile(name string) (string, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(r.base, name)
	}
	data, err := os.ReadFile(name) // #nosec G304 -- import path comes from the document
	if err != nil {
		return "", err
	}
	return string(data), nil
}
