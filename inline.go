package runoff2tex

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// caseLatch is the persistent case-shift mode of the inline scanner.
type caseLatch int

const (
	latchNone caseLatch = iota
	latchUpper
	latchLower
)

// latchState threads between span translations. In legacy mode it carries
// over from line to line for the whole run; with the latch fix it is reset
// at every directive boundary.
type latchState struct {
	latch  caseLatch // persistent case lock
	shift  caseLatch // one-shot shift for the next character
	accept bool      // next character is taken literally
}

// inlineTranslator rewrites flag-character sequences in a text span into
// LaTeX, escaping everything else. The flag table is run-scoped: .FL and
// .NFL mutate it.
type inlineTranslator struct {
	flags    map[rune]string // flag char -> role
	fixLatch bool
	warnings io.Writer
}

// translate scans span one rune at a time and returns the LaTeX rendition
// together with the latch state to thread into the next span.
//
// A doubled uppercase flag locks the latch; a doubled lowercase flag is the
// unlatch sequence. In legacy mode the scanner consumes each half of the
// unlatch pair as its own one-shot downshift, so an active latch never
// clears. Only the fix makes the pair effective.
func (t *inlineTranslator) translate(span string, st latchState) (string, latchState) {
	var b strings.Builder
	b.Grow(len(span))
	var suffix string

	runes := []rune(span)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if st.accept {
			b.WriteString(escapeRune(ch))
			st.accept = false
			continue
		}

		role, isFlag := t.flags[ch]
		if !isFlag {
			b.WriteString(escapeRune(applyCase(ch, &st)))
			continue
		}

		doubled := i+1 < len(runes) && runes[i+1] == ch
		switch role {
		case FlagUppercase:
			if doubled {
				st.latch = latchUpper
				st.shift = latchNone
				i++
			} else {
				st.shift = latchUpper
			}
		case FlagLowercase:
			if doubled && t.fixLatch {
				st.latch = latchNone
				st.shift = latchNone
				i++
			} else {
				st.shift = latchLower
			}
		case FlagAccept:
			st.accept = true
		case FlagUnderline:
			b.WriteString(`\underline{`)
			suffix = "}" + suffix
		case FlagBold:
			b.WriteString(`\textbf{`)
			suffix = "}" + suffix
		default:
			fmt.Fprintf(t.warnings, ">> WARN: unsupported flag %s (%c)\n", role, ch)
		}
	}

	return b.String() + suffix, st
}

// applyCase applies the pending one-shot shift, or failing that the latch,
// to a single character. One-shot shifts win over the latch and expire.
func applyCase(ch rune, st *latchState) rune {
	mode := st.latch
	if st.shift != latchNone {
		mode = st.shift
		st.shift = latchNone
	}
	switch mode {
	case latchUpper:
		return unicode.ToUpper(ch)
	case latchLower:
		return unicode.ToLower(ch)
	}
	return ch
}

// setFlag binds a character to a role, dropping any previous character bound
// to the same role. The legacy table was a one-to-one mapping.
func (t *inlineTranslator) setFlag(role string, c rune) {
	for ch, r := range t.flags {
		if r == role {
			delete(t.flags, ch)
		}
	}
	t.flags[c] = role
}

// clearFlag removes every character bound to the named role.
func (t *inlineTranslator) clearFlag(role string) {
	for ch, r := range t.flags {
		if r == role {
			delete(t.flags, ch)
		}
	}
}
