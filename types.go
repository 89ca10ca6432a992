package runoff2tex

import "io"

// Flag roles recognized by the inline translator. A role names what a flag
// character does when it appears in a text span; the character-to-role table
// is seeded by defaults and mutated at run time by .FL/.NFL directives.
const (
	FlagUppercase = "UPPERCASE"
	FlagLowercase = "LOWERCASE"
	FlagAccept    = "ACCEPT"
	FlagUnderline = "UNDERLINE"
	FlagBold      = "BOLD"
)

// UnknownDirectivePolicy controls what happens to directives outside the
// implemented subset. The historical tool aborted on the first unrecognized
// dot-line; this translator never does.
type UnknownDirectivePolicy int

const (
	// MarkUnknown emits a LaTeX comment naming the directive. Default.
	MarkUnknown UnknownDirectivePolicy = iota
	// DropUnknown discards unrecognized directives silently.
	DropUnknown
)

// FileResolver supplies the content of files imported with .REQ.
// Implementations decide how names are resolved (working directory,
// directory of the source document, an archive, ...).
type FileResolver interface {
	ReadFile(name string) (string, error)
}

// DefaultDocumentClass is used when no document class is configured.
const DefaultDocumentClass = "article"

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	documentClass string
	preamble      []string
	flags         map[rune]string // flag char -> role
	policy        UnknownDirectivePolicy
	fixLatch      bool
	resolver      FileResolver
	warnings      io.Writer
}

// defaultFlagChars returns the DSR flag characters enabled out of the box.
func defaultFlagChars() map[rune]string {
	return map[rune]string{
		'^':  FlagUppercase,
		'\\': FlagLowercase,
		'_':  FlagAccept,
		'&':  FlagUnderline,
	}
}

// Option configures a Service.
type Option func(*Service)

// WithDocumentClass sets the LaTeX document class emitted in the preamble.
func WithDocumentClass(class string) Option {
	return func(s *Service) {
		s.cfg.documentClass = class
	}
}

// WithPreamble appends extra lines to the generated preamble, after the
// documentclass and before \begin{document}.
func WithPreamble(lines ...string) Option {
	return func(s *Service) {
		s.cfg.preamble = append(s.cfg.preamble, lines...)
	}
}

// WithFlagChar binds a flag character to a role (see the Flag* constants)
// before the run starts, as if the document began with a .FL directive.
func WithFlagChar(role string, c rune) Option {
	return func(s *Service) {
		for ch, r := range s.cfg.flags {
			if r == role {
				delete(s.cfg.flags, ch)
			}
		}
		s.cfg.flags[c] = role
	}
}

// WithUnknownDirectivePolicy selects how unrecognized directives are handled.
func WithUnknownDirectivePolicy(p UnknownDirectivePolicy) Option {
	return func(s *Service) {
		s.cfg.policy = p
	}
}

// WithCaseLatchFix makes the case-shift unlatch sequence effective and resets
// latch state at every directive boundary, diverging from the legacy tool.
// See the package documentation for the behavior being fixed.
func WithCaseLatchFix() Option {
	return func(s *Service) {
		s.cfg.fixLatch = true
	}
}

// WithFileResolver supplies the resolver used by the .REQ directive.
func WithFileResolver(r FileResolver) Option {
	return func(s *Service) {
		s.cfg.resolver = r
	}
}

// WithWarnings directs non-fatal diagnostics (unsupported flag roles,
// unreadable .REQ files) to w. Defaults to io.Discard.
func WithWarnings(w io.Writer) Option {
	return func(s *Service) {
		s.cfg.warnings = w
	}
}
