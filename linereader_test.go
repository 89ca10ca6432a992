package runoff2tex

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, input string) []line {
	t.Helper()
	lr := newLineReader(strings.NewReader(input))
	var lines []line
	for {
		l, err := lr.next()
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("next() error = %v", err)
		}
		lines = append(lines, l)
	}
}

func TestLineReaderClassification(t *testing.T) {
	lines := readAll(t, ".HL 1 Intro\nplain text\n\n  .C indented directive\n")

	want := []line{
		{kind: directiveLine, raw: ".HL 1 Intro"},
		{kind: textLine, raw: "plain text"},
		{kind: textLine, raw: ""},
		{kind: directiveLine, raw: "  .C indented directive"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestLineReaderNormalizesCRLF(t *testing.T) {
	lines := readAll(t, "first\r\nsecond\r\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].raw != "first" || lines[1].raw != "second" {
		t.Errorf("lines = %q, %q, want carriage returns stripped", lines[0].raw, lines[1].raw)
	}
}

func TestLineReaderSkipsFileHeader(t *testing.T) {
	t.Run("header on first line is dropped", func(t *testing.T) {
		lines := readAll(t, "+-OS-FILE-HEADER\ncontent\n")
		if len(lines) != 1 || lines[0].raw != "content" {
			t.Errorf("lines = %+v, want only the content line", lines)
		}
	})

	t.Run("header-looking line later is kept", func(t *testing.T) {
		lines := readAll(t, "content\n+-not a header here\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
		if lines[1].raw != "+-not a header here" {
			t.Errorf("line 1 = %q, want it preserved", lines[1].raw)
		}
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLineReaderPropagatesSourceError(t *testing.T) {
	lr := newLineReader(failingReader{})
	_, err := lr.next()
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("next() error = %v, want source failure", err)
	}
}
