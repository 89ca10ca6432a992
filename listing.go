package runoff2tex

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// listingLanguages maps chroma lexer names to language names understood by
// the LaTeX listings package. Languages missing here are emitted without a
// language option, which listings treats as plain text.
var listingLanguages = map[string]string{
	"Ada":          "Ada",
	"Assembly":     "Assembler",
	"Bash":         "bash",
	"C":            "C",
	"C++":          "C++",
	"COBOL":        "COBOL",
	"Fortran":      "Fortran",
	"FortranFixed": "Fortran",
	"Go":           "Go",
	"Java":         "Java",
	"Lisp":         "Lisp",
	"Makefile":     "make",
	"Pascal":       "Pascal",
	"Perl":         "Perl",
	"Python":       "Python",
	"Ruby":         "Ruby",
	"SQL":          "SQL",
	"TeX":          "TeX",
}

// detectListingLanguage picks a listings language for an imported file,
// matching on the file name first and falling back to content analysis.
// Empty means undetected.
func detectListingLanguage(filename, content string) string {
	lex := lexers.Match(filename)
	if lex == nil {
		lex = lexers.Analyse(content)
	}
	if lex == nil {
		return ""
	}
	return listingLanguages[lex.Config().Name]
}

// emitListing writes an imported file as an lstlisting block. Content is
// verbatim apart from closing-sequence protection.
func (in *interpreter) emitListing(name, content string) {
	if lang := detectListingLanguage(name, content); lang != "" {
		in.emit(`\begin{lstlisting}[language=` + lang + `]`)
	} else {
		in.emit(`\begin{lstlisting}`)
	}
	content = strings.TrimRight(content, "\n")
	if content != "" {
		for _, l := range strings.Split(content, "\n") {
			in.out.line(protectListing(strings.TrimRight(l, "\r")))
		}
	}
	in.out.line(`\end{lstlisting}`)
}

func protectListing(s string) string {
	return strings.ReplaceAll(s, `\end{lstlisting}`, `\end {lstlisting}`)
}
