package ast

import (
	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/values"
)

// VarDeclStmt is "Definir a, b Como Entero".
type VarDeclStmt struct {
	Line int

	Names []string
	Type  values.DeclaredType
}

// AssignStmt is "name <- expr". Expr is kept unevaluated.
type AssignStmt struct {
	Line int

	Name string
	Expr []lexer.Token
}

// WriteStmt is "Escribir a, b". Commas in Expr are already rewritten to
// additions, so the list evaluates as one value.
type WriteStmt struct {
	Line int

	Expr      []lexer.Token
	NoNewline bool
}

type ReadStmt struct {
	Line int

	Names []string
}

// IfStmt keeps its body as unparsed lines. The body is built into
// statements only when the branch is taken.
type IfStmt struct {
	Line int

	Cond []lexer.Token
	Body []Line
}

func (*VarDeclStmt) StmtNode() {}
func (*AssignStmt) StmtNode()  {}
func (*WriteStmt) StmtNode()   {}
func (*ReadStmt) StmtNode()    {}
func (*IfStmt) StmtNode()      {}

func (s *VarDeclStmt) SourceLine() int { return s.Line }
func (s *AssignStmt) SourceLine() int  { return s.Line }
func (s *WriteStmt) SourceLine() int   { return s.Line }
func (s *ReadStmt) SourceLine() int    { return s.Line }
func (s *IfStmt) SourceLine() int      { return s.Line }
