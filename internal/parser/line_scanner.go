package parser

import "github.com/kievzenit/pseudocode/internal/ast"

type LineScanner interface {
	Read() ast.Line
	HasLines() bool
}

type SimpleLineScanner struct {
	lines []ast.Line

	pos int
}

func NewLineScanner(lines []ast.Line) LineScanner {
	return &SimpleLineScanner{
		lines: lines,
	}
}

func (s *SimpleLineScanner) Read() ast.Line {
	line := s.lines[s.pos]
	s.pos++

	return line
}

func (s *SimpleLineScanner) HasLines() bool {
	return s.pos < len(s.lines)
}
