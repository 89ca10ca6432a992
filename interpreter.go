package runoff2tex

import (
	"fmt"
	"strconv"
	"strings"
)

// commandHandler performs one directive's action against the interpreter.
type commandHandler func(in *interpreter, d directive)

// interpreter maps directives to document-structure actions and owns the
// document state for one run. The command table is immutable once built and
// is the main extensibility point of the translator.
type interpreter struct {
	commands map[string]commandHandler
	inline   *inlineTranslator
	resolver FileResolver
	policy   UnknownDirectivePolicy
	out      *emitter
	st       docState
}

func newInterpreter(cfg serviceConfig, out *emitter) *interpreter {
	flags := make(map[rune]string, len(cfg.flags))
	for c, role := range cfg.flags {
		flags[c] = role
	}
	return &interpreter{
		commands: defaultCommands(),
		inline: &inlineTranslator{
			flags:    flags,
			fixLatch: cfg.fixLatch,
			warnings: cfg.warnings,
		},
		resolver: cfg.resolver,
		policy:   cfg.policy,
		out:      out,
	}
}

// defaultCommands builds the directive table. Keys are uppercased command
// words including the dot.
func defaultCommands() map[string]commandHandler {
	return map[string]commandHandler{
		".AX":      (*interpreter).cmdAppendix,
		".AJ":      (*interpreter).cmdNoop, // autojustify
		".AP":      (*interpreter).cmdNoop, // autoparagraph
		".B":       (*interpreter).cmdBlank,
		".B1":      (*interpreter).cmdBoldOn,
		".B0":      (*interpreter).cmdBoldOff,
		".C":       (*interpreter).cmdCentre,
		".COMMENT": (*interpreter).cmdComment,
		".EBB":     (*interpreter).cmdNoop, // terminal bolding modes
		".EBO":     (*interpreter).cmdNoop,
		".EUN":     (*interpreter).cmdNoop,
		".EL":      (*interpreter).cmdLiteralEnd,
		".ELS":     (*interpreter).cmdListEnd,
		".END":     (*interpreter).cmdEnd,
		".EFN":     (*interpreter).cmdFootnoteEnd,
		".FL":      (*interpreter).cmdFlag,
		".FN":      (*interpreter).cmdFootnote,
		".HL":      (*interpreter).cmdHeading,
		".LE":      (*interpreter).cmdListItem,
		".LM":      (*interpreter).cmdNoop, // left margin
		".LS":      (*interpreter).cmdListStart,
		".LT":      (*interpreter).cmdLiteral,
		".NFL":     (*interpreter).cmdNoFlag,
		".NOTE":    (*interpreter).cmdNote,
		".PAGE":    (*interpreter).cmdPage,
		".PG":      (*interpreter).cmdPage,
		".PS":      (*interpreter).cmdNoop, // page size
		".REQ":     (*interpreter).cmdRequire,
		".RM":      (*interpreter).cmdNoop, // right margin
		".T":       (*interpreter).cmdTitle,
		".TITLE":   (*interpreter).cmdTitle,
	}
}

func (in *interpreter) known(name string) bool {
	_, ok := in.commands[name]
	return ok
}

// handleLine routes one classified line. Comment regions swallow everything
// except their closing directive; literal blocks pass everything through
// verbatim except theirs.
func (in *interpreter) handleLine(l line) {
	if in.st.inComment {
		if l.kind == directiveLine {
			d := parseDirective(l.raw, in.known)
			if d.Name == ".END" && firstWord(d.Rest) == "COMMENT" {
				in.st.inComment = false
			}
		}
		return
	}

	if in.st.inLiteral {
		if l.kind == directiveLine {
			d := parseDirective(l.raw, in.known)
			if d.Name == ".EL" {
				in.cmdLiteralEnd(d)
				return
			}
		}
		in.out.line(protectVerbatim(l.raw))
		return
	}

	if l.kind == directiveLine {
		in.dispatch(parseDirective(l.raw, in.known))
		return
	}
	in.textLine(l.raw)
}

func (in *interpreter) dispatch(d directive) {
	if in.inline.fixLatch {
		in.st.latch = latchState{}
	}
	h, ok := in.commands[d.Name]
	if !ok {
		in.unknown(d)
		return
	}
	h(in, d)
}

func (in *interpreter) unknown(d directive) {
	if in.policy == DropUnknown {
		return
	}
	in.emit("%% runoff2tex: unknown directive " + strings.TrimSpace(d.Name+d.Rest))
}

// textLine translates one prose line. Blank lines pass through as paragraph
// breaks.
func (in *interpreter) textLine(s string) {
	if strings.TrimSpace(s) == "" {
		in.out.line("")
		return
	}
	in.emit(in.translateSpan(s))
}

// translateSpan runs the inline translator, threading the run's latch state.
func (in *interpreter) translateSpan(s string) string {
	out, st := in.inline.translate(s, in.st.latch)
	in.st.latch = st
	return out
}

// emit writes one output line, flushing any pending title first so the
// \maketitle lands before the content that follows it.
func (in *interpreter) emit(s string) {
	in.flushTitle()
	in.out.line(s)
}

func (in *interpreter) flushTitle() {
	if !in.st.titlePending {
		return
	}
	in.st.titlePending = false
	in.out.line(`\title{` + in.st.pendingTitle + `}`)
	in.out.line(`\maketitle`)
	in.st.pendingTitle = ""
}

// finish closes every half-open construct at end of input. Unterminated
// blocks are implicitly closed, never an error.
func (in *interpreter) finish() {
	if in.st.inLiteral {
		in.st.inLiteral = false
		in.out.line(`\end{verbatim}`)
	}
	in.st.inComment = false
	for in.st.openFootnotes > 0 {
		in.st.openFootnotes--
		in.out.line("}")
	}
	for in.st.openBold > 0 {
		in.st.openBold--
		in.out.line("}")
	}
	for in.st.openNotes > 0 {
		in.st.openNotes--
		in.out.line(`\end{quotation}`)
	}
	for in.st.popList() {
		in.out.line(`\end{itemize}`)
	}
	in.flushTitle()
}

// --- command handlers ------------------------------------------------------

func (in *interpreter) cmdNoop(directive) {}

func (in *interpreter) cmdAppendix(d directive) {
	if !in.st.inAppendix {
		in.st.inAppendix = true
		in.emit(`\appendix`)
	}
	in.emit(`\section{` + in.translateSpan(strings.TrimSpace(d.argText())) + `}`)
}

func (in *interpreter) cmdBlank(d directive) {
	n := 1
	for _, item := range parseArgs(d.Rest) {
		if v, ok := item.asInt(); ok {
			n = v
			break
		}
	}
	if n < 0 {
		n = 0
	}
	in.emit(fmt.Sprintf(`\vspace{%d\baselineskip}`, n))
}

func (in *interpreter) cmdBoldOn(directive) {
	in.st.openBold++
	in.emit(`\textbf{`)
}

func (in *interpreter) cmdBoldOff(directive) {
	if in.st.openBold == 0 {
		return
	}
	in.st.openBold--
	in.emit("}")
}

func (in *interpreter) cmdCentre(d directive) {
	in.emit(`\centerline{` + in.translateSpan(d.argText()) + `}`)
}

func (in *interpreter) cmdComment(d directive) {
	// With trailing text the whole directive is a one-line comment;
	// bare .COMMENT opens a region closed only by .END COMMENT.
	if strings.TrimSpace(d.argText()) != "" {
		return
	}
	in.st.inComment = true
}

func (in *interpreter) cmdEnd(d directive) {
	switch firstWord(d.Rest) {
	case "COMMENT":
		in.st.inComment = false
	case "NOTE":
		in.cmdNoteEnd(d)
	case "FOOTNOTE":
		in.cmdFootnoteEnd(d)
	default:
		in.unknown(d)
	}
}

func (in *interpreter) cmdFlag(d directive) {
	rest := strings.TrimLeft(d.Rest, " \t;")
	sp := strings.IndexAny(rest, " \t")
	if sp < 0 {
		fmt.Fprintf(in.inline.warnings, ">> WARN: .FL needs a flag name and character\n")
		return
	}
	role := strings.ToUpper(rest[:sp])
	charPart := strings.TrimLeft(rest[sp:], " \t")
	if charPart == "" {
		fmt.Fprintf(in.inline.warnings, ">> WARN: .FL %s missing flag character\n", role)
		return
	}
	in.inline.setFlag(role, []rune(charPart)[0])
}

func (in *interpreter) cmdNoFlag(d directive) {
	role := firstWord(d.Rest)
	if role == "" {
		return
	}
	in.inline.clearFlag(role)
}

func (in *interpreter) cmdFootnote(directive) {
	in.st.openFootnotes++
	in.emit(`\footnote{`)
}

func (in *interpreter) cmdFootnoteEnd(directive) {
	if in.st.openFootnotes == 0 {
		return
	}
	in.st.openFootnotes--
	in.emit("}")
}

// sectionNames maps heading level to the LaTeX sectioning command.
var sectionNames = [...]string{"section", "subsection", "subsubsection", "paragraph", "subparagraph"}

func (in *interpreter) cmdHeading(d directive) {
	rest := strings.TrimLeft(d.Rest, " \t;")
	level := 1
	if i := leadingIntLen(rest); i > 0 {
		if v, err := strconv.Atoi(rest[:i]); err == nil {
			level = v
		}
		rest = strings.TrimLeft(rest[i:], " \t;")
	}
	if level < 1 {
		level = 1
	}
	if level > len(sectionNames) {
		level = len(sectionNames)
	}
	name := sectionNames[level-1]
	in.emit(`\` + name + `{` + in.translateSpan(strings.TrimSpace(rest)) + `}`)
}

// leadingIntLen returns the length of a signed integer prefix of s.
func leadingIntLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

func (in *interpreter) cmdListStart(d directive) {
	bullet := ""
	for _, item := range parseArgs(d.Rest) {
		if s, ok := item.asString(); ok {
			bullet = s
			break
		}
	}
	in.st.pushList(bullet)
	in.emit(`\begin{itemize}`)
}

func (in *interpreter) cmdListItem(d directive) {
	text := in.translateSpan(d.argText())
	if bullet := in.st.currentBullet(); bullet != "" {
		in.emit(`\item[` + EscapeText(bullet) + `] ` + text)
		return
	}
	in.emit(`\item ` + text)
}

func (in *interpreter) cmdListEnd(directive) {
	if !in.st.popList() {
		return
	}
	in.emit(`\end{itemize}`)
}

func (in *interpreter) cmdLiteral(directive) {
	in.st.inLiteral = true
	in.emit(`\begin{verbatim}`)
}

func (in *interpreter) cmdLiteralEnd(directive) {
	if !in.st.inLiteral {
		return
	}
	in.st.inLiteral = false
	in.out.line(`\end{verbatim}`)
}

func (in *interpreter) cmdNote(d directive) {
	in.st.openNotes++
	in.emit(`\begin{quotation}`)
	if caption := strings.TrimSpace(d.argText()); caption != "" {
		in.emit(`\textbf{` + in.translateSpan(caption) + `}`)
	}
}

func (in *interpreter) cmdNoteEnd(directive) {
	if in.st.openNotes == 0 {
		return
	}
	in.st.openNotes--
	in.emit(`\end{quotation}`)
}

func (in *interpreter) cmdPage(directive) {
	in.emit(`\newpage`)
}

func (in *interpreter) cmdRequire(d directive) {
	name := ""
	for _, item := range parseArgs(d.Rest) {
		if s, ok := item.asString(); ok {
			name = s
			break
		}
	}
	if name == "" {
		name = strings.TrimSpace(d.argText())
	}
	if name == "" {
		in.emit(`%% runoff2tex: .REQ without a file name`)
		return
	}
	if in.resolver == nil {
		in.emit(`%% runoff2tex: cannot import ` + strconv.Quote(name) + `: no file resolver`)
		return
	}
	content, err := in.resolver.ReadFile(name)
	if err != nil {
		fmt.Fprintf(in.inline.warnings, ">> WARN: .REQ %q: %v\n", name, err)
		in.emit(`%% runoff2tex: cannot import ` + strconv.Quote(name))
		return
	}
	in.emitListing(name, content)
}

func (in *interpreter) cmdTitle(d directive) {
	in.st.pendingTitle = in.translateSpan(strings.TrimSpace(d.argText()))
	in.st.titlePending = true
}

// protectVerbatim keeps literal-block content from terminating the block
// early. Verbatim has no escape character, so the closing sequence is
// broken with a space instead.
func protectVerbatim(s string) string {
	return strings.ReplaceAll(s, `\end{verbatim}`, `\end {verbatim}`)
}
