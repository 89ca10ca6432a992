package runoff2tex

import (
	"bufio"
	"io"
	"strings"
)

// lineKind classifies a physical input line.
type lineKind int

const (
	textLine lineKind = iota
	directiveLine
)

// line is one logical input line with its terminator stripped. raw keeps the
// original content so literal blocks can reproduce it byte for byte.
type line struct {
	kind lineKind
	raw  string
}

// lineReader produces a forward-only sequence of classified lines.
type lineReader struct {
	sc *bufio.Scanner
	n  int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &lineReader{sc: sc}
}

// next returns the next classified line, or io.EOF at end of stream.
// Any other error is a failure of the underlying source.
func (lr *lineReader) next() (line, error) {
	for lr.sc.Scan() {
		raw := strings.TrimRight(lr.sc.Text(), "\r")
		lr.n++
		// A leading "+-" line is a file-listing header from the source
		// system, not document content.
		if lr.n == 1 && strings.HasPrefix(raw, "+-") {
			continue
		}
		return classify(raw), nil
	}
	if err := lr.sc.Err(); err != nil {
		return line{}, err
	}
	return line{}, io.EOF
}

// classify marks a line as a directive iff its first non-whitespace
// character is the command prefix. Blank lines are empty text lines.
func classify(raw string) line {
	if strings.HasPrefix(strings.TrimLeft(raw, " \t"), ".") {
		return line{kind: directiveLine, raw: raw}
	}
	return line{kind: textLine, raw: raw}
}
