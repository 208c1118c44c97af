package ast

import (
	"strings"

	"github.com/kievzenit/pseudocode/internal/lexer"
)

// Line is one non-empty tokenized source line. Number is the 1-based line in
// the source file.
type Line struct {
	Number int
	Tokens []lexer.Token
}

func (l Line) String() string {
	parts := make([]string, len(l.Tokens))
	for i, token := range l.Tokens {
		parts[i] = token.String()
	}

	return strings.Join(parts, " ")
}

// IsOnly reports whether the line consists of exactly the given keyword.
func (l Line) IsOnly(keyword lexer.Keyword) bool {
	return len(l.Tokens) == 1 && l.Tokens[0].Is(keyword)
}

// Program is the ordered statement list of one run. All statements share a
// single flat namespace.
type Program struct {
	Stmts []Stmt
}

type Stmt interface {
	StmtNode()
	SourceLine() int
}
