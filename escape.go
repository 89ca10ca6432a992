package runoff2tex

import "strings"

// latexEscapes maps characters that are syntactically significant in LaTeX
// to their escaped forms. The angle brackets come from the legacy tool,
// which set them in math mode.
var latexEscapes = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'%':  `\%`,
	'&':  `\&`,
	'_':  `\_`,
	'#':  `\#`,
	'$':  `\$`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'<':  `$<$`,
	'>':  `$>$`,
}

// escapeRune escapes a single character for LaTeX. Applied exactly once per
// output character; callers must not re-escape the result.
func escapeRune(r rune) string {
	if esc, ok := latexEscapes[r]; ok {
		return esc
	}
	return string(r)
}

// EscapeText escapes a plain string for LaTeX without any flag-character
// interpretation. Useful for argument text that is structural rather than
// prose, such as list bullet labels.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(escapeRune(r))
	}
	return b.String()
}
