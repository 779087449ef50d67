// Package source defines the input buffer matched by the parser.
// The buffer is fully resident and random-access by byte offset;
// line/column mapping is only computed for diagnostics.
package source

import (
	"bytes"
	"unicode/utf8"
)

type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// At returns the byte at offset pos and true, or 0 and false past the end.
func (s *Source) At(pos int) (byte, bool) {
	if pos < 0 || pos >= len(s.content) {
		return 0, false
	}
	return s.content[pos], true
}

// LineCol converts a byte offset to 1-based line and column numbers.
// Columns count runes, not bytes. Offsets outside the buffer are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := s.findLineIndex(pos)
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

func (s *Source) findLineIndex(pos int) int {
	l := 0
	h := len(s.lineStarts) - 1
	for l < h {
		i := (l + h + 1) >> 1
		if s.lineStarts[i] <= pos {
			l = i
		} else {
			h = i - 1
		}
	}
	return l
}

// MakePos captures the line/column information for a byte offset.
func (s *Source) MakePos(pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

// Pos is a resolved position inside a Source; it implements tokay.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
