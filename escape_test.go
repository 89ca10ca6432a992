package runoff2tex

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"percent", "50% done", `50\% done`},
		{"hash and dollar", "#1 costs $2", `\#1 costs \$2`},
		{"underscore", "file_name", `file\_name`},
		{"ampersand", "a & b", `a \& b`},
		{"braces", "{x}", `\{x\}`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"tilde and caret", "~^", `\textasciitilde{}\textasciicircum{}`},
		{"angle brackets in math mode", "a<b>c", `a$<$b$>$c`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.input); got != tt.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Escaping must be applied exactly once per character: the expansion of one
// escape must never itself be re-escaped.
func TestEscapeTextNotDoubleApplied(t *testing.T) {
	if got := EscapeText("%"); got != `\%` {
		t.Fatalf("EscapeText(%%) = %q, want single escape", got)
	}
	// The backslash expansion contains braces; they come out verbatim.
	if got := EscapeText(`\`); got != `\textbackslash{}` {
		t.Fatalf("EscapeText(backslash) = %q, want braces unescaped", got)
	}
}
