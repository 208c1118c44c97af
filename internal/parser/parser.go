// Package parser builds statement nodes from tokenized program lines.
//
// Each line is one statement, recognized by the shape of its leading tokens.
// Conditional bodies are captured as raw lines and are built only when the
// interpreter enters them.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/kievzenit/pseudocode/internal/ast"
	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/program_errors"
)

const DefaultMaxNesting = 64

type Options struct {
	// MaxNesting bounds how deeply Si blocks may nest. Zero means
	// DefaultMaxNesting.
	MaxNesting int
	// Nesting is the depth of the lines being parsed; 0 for the program
	// body, 1 inside one Si, and so on.
	Nesting int

	Logger *slog.Logger
}

type Parser struct {
	scanner LineScanner

	maxNesting int
	nesting    int
	logger     *slog.Logger
}

func NewParser(lines []ast.Line, opts Options) *Parser {
	maxNesting := opts.MaxNesting
	if maxNesting <= 0 {
		maxNesting = DefaultMaxNesting
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Parser{
		scanner: NewLineScanner(lines),

		maxNesting: maxNesting,
		nesting:    opts.Nesting,
		logger:     logger,
	}
}

// Parse builds every statement or fails at the first line it does not
// recognize. No partial program is returned on error.
func (p *Parser) Parse() (*ast.Program, error) {
	stmts := make([]ast.Stmt, 0)
	for p.scanner.HasLines() {
		line := p.scanner.Read()
		if len(line.Tokens) == 0 {
			continue
		}

		stmt, err := p.parseStmt(line)
		if err != nil {
			p.logger.Debug("statement rejected", "line", line.Number, "tokens", line.String())
			return nil, program_errors.AtLine(err, line.Number)
		}

		p.logger.Debug("statement built", "line", line.Number, "stmt", fmt.Sprintf("%T", stmt))
		stmts = append(stmts, stmt)
	}

	return &ast.Program{
		Stmts: stmts,
	}, nil
}

func (p *Parser) parseStmt(line ast.Line) (ast.Stmt, error) {
	first := line.Tokens[0]

	switch {
	case first.Is(lexer.Definir):
		return p.parseVarDeclStmt(line)
	case first.Kind == lexer.VARIABLE && len(line.Tokens) > 1 && line.Tokens[1].Kind == lexer.ASSIGN:
		return p.parseAssignStmt(line), nil
	case first.Is(lexer.Escribir):
		return p.parseWriteStmt(line), nil
	case first.Is(lexer.Leer):
		return p.parseReadStmt(line), nil
	case first.Is(lexer.Si):
		return p.parseIfStmt(line)
	}

	return nil, program_errors.New(program_errors.SyntaxError)
}

// parseVarDeclStmt expects the line to end in "Como <Type>". The tokens
// before that pair are the declared names, optionally separated by commas.
func (p *Parser) parseVarDeclStmt(line ast.Line) (*ast.VarDeclStmt, error) {
	rest := line.Tokens[1:]
	if len(rest) < 2 ||
		!rest[len(rest)-2].Is(lexer.Como) ||
		rest[len(rest)-1].Kind != lexer.TYPE {
		return nil, program_errors.New(program_errors.MissingTypeOrUnvalidType)
	}

	names, err := declaredNames(rest[:len(rest)-2])
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, program_errors.NewDetailed(program_errors.SyntaxError, "no variables declared")
	}

	return &ast.VarDeclStmt{
		Line: line.Number,

		Names: names,
		Type:  rest[len(rest)-1].Type,
	}, nil
}

func (p *Parser) parseAssignStmt(line ast.Line) *ast.AssignStmt {
	return &ast.AssignStmt{
		Line: line.Number,

		Name: line.Tokens[0].Value,
		Expr: copyTokens(line.Tokens[2:]),
	}
}

// parseWriteStmt rewrites argument commas into additions. A trailing
// "Sin Saltar" (or "SinSaltar") suppresses the newline.
func (p *Parser) parseWriteStmt(line ast.Line) *ast.WriteStmt {
	rest := line.Tokens[1:]

	var noNewline bool
	switch n := len(rest); {
	case n >= 1 && rest[n-1].Is(lexer.SinSaltar):
		noNewline = true
		rest = rest[:n-1]
	case n >= 2 && rest[n-2].Is(lexer.Sin) && rest[n-1].Is(lexer.Saltar):
		noNewline = true
		rest = rest[:n-2]
	}

	expr := make([]lexer.Token, len(rest))
	for i, token := range rest {
		if token.Kind == lexer.COMMA {
			expr[i] = lexer.Token{Kind: lexer.PLUS, Value: "+"}
			continue
		}
		expr[i] = token
	}

	return &ast.WriteStmt{
		Line: line.Number,

		Expr:      expr,
		NoNewline: noNewline,
	}
}

// parseReadStmt keeps the variables on the line and ignores anything else.
func (p *Parser) parseReadStmt(line ast.Line) *ast.ReadStmt {
	names := make([]string, 0)
	for _, token := range line.Tokens[1:] {
		if token.Kind == lexer.VARIABLE {
			names = append(names, token.Value)
		}
	}

	return &ast.ReadStmt{
		Line: line.Number,

		Names: names,
	}
}

// parseIfStmt reads "Si ( cond ) Entonces" and captures every following line
// up to the FinSi that closes it. Nested Si blocks are balanced.
func (p *Parser) parseIfStmt(line ast.Line) (*ast.IfStmt, error) {
	cond, err := extractCondition(line.Tokens[1:])
	if err != nil {
		return nil, err
	}

	if p.nesting+1 > p.maxNesting {
		return nil, program_errors.NewDetailed(program_errors.SyntaxError, "Si nested too deeply")
	}

	body := make([]ast.Line, 0)
	depth := 0
	for p.scanner.HasLines() {
		bodyLine := p.scanner.Read()

		if bodyLine.IsOnly(lexer.FinSi) {
			if depth == 0 {
				return &ast.IfStmt{
					Line: line.Number,

					Cond: cond,
					Body: body,
				}, nil
			}
			depth--
		} else if len(bodyLine.Tokens) > 0 && bodyLine.Tokens[0].Is(lexer.Si) {
			depth++
			if p.nesting+1+depth > p.maxNesting {
				return nil, program_errors.AtLine(
					program_errors.NewDetailed(program_errors.SyntaxError, "Si nested too deeply"),
					bodyLine.Number)
			}
		}

		body = append(body, bodyLine)
	}

	return nil, program_errors.NewDetailed(program_errors.SyntaxError, "missing FinSi")
}

// extractCondition expects exactly "( cond ) Entonces".
func extractCondition(tokens []lexer.Token) ([]lexer.Token, error) {
	n := len(tokens)
	if n < 4 ||
		tokens[0].Kind != lexer.LPAREN ||
		tokens[n-2].Kind != lexer.RPAREN ||
		!tokens[n-1].Is(lexer.Entonces) {
		return nil, program_errors.NewDetailed(program_errors.SyntaxError, "expected Si ( condition ) Entonces")
	}

	return copyTokens(tokens[1 : n-2]), nil
}

// declaredNames accepts only variables and commas. Any other token means the
// list names something that cannot hold a value.
func declaredNames(tokens []lexer.Token) ([]string, error) {
	names := make([]string, 0)
	for _, token := range tokens {
		switch token.Kind {
		case lexer.VARIABLE:
			names = append(names, token.Value)
		case lexer.COMMA:
		default:
			return nil, program_errors.NewDetailed(program_errors.SyntaxError,
				fmt.Sprintf("%q is not a variable name", token.Value))
		}
	}

	return names, nil
}

func copyTokens(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, len(tokens))
	copy(out, tokens)

	return out
}

// Build is a shorthand for NewParser(lines, opts).Parse().
func Build(lines []ast.Line, opts Options) (*ast.Program, error) {
	return NewParser(lines, opts).Parse()
}
