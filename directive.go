package runoff2tex

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// directive is the parsed form of one command line. Name is the uppercased
// command word including the leading dot; Rest is the raw remainder, with
// separators and argument text still intact for the handler to consume.
type directive struct {
	Name string
	Rest string
}

// argLexer tokenizes structured argument lists the way the legacy grammar
// did: integers, single- or double-quoted strings, bare words, with spaces,
// semicolons and commas acting as separators.
var argLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "Int", Pattern: `[+-]?\d+`},
	{Name: "Word", Pattern: `[A-Za-z][A-Za-z0-9]*`},
	{Name: "Sep", Pattern: `[,;\s]+`},
	{Name: "Punct", Pattern: `.`},
})

type argList struct {
	Items []argItem `parser:"@@*"`
}

// argItem is one token of a structured argument list.
type argItem struct {
	Int   *string `parser:"  @Int"`
	Str   *string `parser:"| @String"`
	Word  *string `parser:"| @Word"`
	Punct *string `parser:"| @Punct"`
}

var argParser = participle.MustBuild[argList](
	participle.Lexer(argLexer),
	participle.Elide("Sep"),
)

// asInt returns the item's integer value if it is an integer token.
func (a argItem) asInt() (int, bool) {
	if a.Int == nil {
		return 0, false
	}
	n, err := strconv.Atoi(*a.Int)
	if err != nil {
		return 0, false
	}
	return n, true
}

// asString returns the item's unquoted value if it is a string token.
func (a argItem) asString() (string, bool) {
	if a.Str == nil {
		return "", false
	}
	s := *a.Str
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	return s, true
}

// parseArgs tokenizes a structured argument list. Malformed input yields
// nil; callers fall back to defaults per the non-fatal error policy.
func parseArgs(rest string) []argItem {
	if strings.TrimSpace(rest) == "" {
		return nil
	}
	parsed, err := argParser.ParseString("", rest)
	if err != nil {
		return nil
	}
	return parsed.Items
}

// parseDirective splits a directive line into command word and remainder.
// The command word is the dot plus following letters and digits, uppercased.
// If the exact word is not in the command table, trailing digits are split
// off and rejoined to the remainder, so ".HL1 Intro" parses as ".HL 1 Intro"
// while ".B1" stays the bold directive. known reports table membership.
func parseDirective(s string, known func(string) bool) directive {
	s = strings.TrimLeft(s, " \t")
	i := 1
	for i < len(s) && isCommandChar(s[i]) {
		i++
	}
	name := "." + strings.ToUpper(s[1:i])
	rest := s[i:]

	if !known(name) {
		base := name
		digits := ""
		for len(base) > 2 && base[len(base)-1] >= '0' && base[len(base)-1] <= '9' {
			digits = base[len(base)-1:] + digits
			base = base[:len(base)-1]
		}
		if digits != "" && known(base) {
			name = base
			rest = digits + rest
		}
	}

	return directive{Name: name, Rest: rest}
}

func isCommandChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// argText returns the remainder as free text, with leading separators
// stripped. Used by text-bearing commands (.C, .LE;item, ...).
func (d directive) argText() string {
	return strings.TrimLeft(d.Rest, " \t;")
}

// firstWord returns the first whitespace-delimited word of s, uppercased.
func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}
