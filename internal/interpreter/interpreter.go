// Package interpreter executes built programs statement by statement against
// a single variable store.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/golang/groupcache/lru"
	"github.com/kievzenit/pseudocode/internal/ast"
	"github.com/kievzenit/pseudocode/internal/evaluator"
	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/memory"
	"github.com/kievzenit/pseudocode/internal/parser"
	"github.com/kievzenit/pseudocode/internal/program_errors"
	"github.com/kievzenit/pseudocode/internal/values"
)

const (
	DefaultPrompt        = "> "
	DefaultBodyCacheSize = 128
)

type Options struct {
	// Prompt is written before every line Leer reads.
	Prompt string
	// MaxNesting is passed to the parser when building Si bodies.
	MaxNesting int
	// BodyCacheSize bounds how many built Si bodies are kept.
	BodyCacheSize int
	// Lexer is used by RunSource.
	Lexer lexer.Options

	Logger *slog.Logger
}

func (o Options) normalize() Options {
	out := o
	if out.Prompt == "" {
		out.Prompt = DefaultPrompt
	}
	if out.MaxNesting <= 0 {
		out.MaxNesting = parser.DefaultMaxNesting
	}
	if out.BodyCacheSize <= 0 {
		out.BodyCacheSize = DefaultBodyCacheSize
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}

	return out
}

type Interpreter struct {
	store *memory.Store
	in    LineReader
	out   io.Writer

	opts   Options
	bodies *lru.Cache
	logger *slog.Logger
}

func New(store *memory.Store, in LineReader, out io.Writer, opts Options) *Interpreter {
	opts = opts.normalize()

	return &Interpreter{
		store: store,
		in:    in,
		out:   out,

		opts:   opts,
		bodies: lru.New(opts.BodyCacheSize),
		logger: opts.Logger,
	}
}

// Run executes the program. The first error stops the run; output written
// before it is kept.
//
// Built Si bodies outlive the run, so running the same program again with
// this interpreter does not parse any taken body a second time.
func (i *Interpreter) Run(program *ast.Program) error {
	err := i.execStmts(program.Stmts, 0)
	i.logStore()

	return err
}

// logStore writes every variable, in declaration order, at debug level.
func (i *Interpreter) logStore() {
	if !i.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	snapshot := i.store.Snapshot()
	attrs := make([]any, 0, i.store.Len())
	for _, name := range i.store.Names() {
		attrs = append(attrs, slog.String(name, snapshot[name].String()))
	}

	i.logger.Debug("run finished", slog.Int("variables", i.store.Len()), slog.Group("store", attrs...))
}

func (i *Interpreter) execStmts(stmts []ast.Stmt, nesting int) error {
	for _, stmt := range stmts {
		if err := i.execStmt(stmt, nesting); err != nil {
			return program_errors.AtLine(err, stmt.SourceLine())
		}
	}

	return nil
}

func (i *Interpreter) execStmt(stmt ast.Stmt, nesting int) error {
	i.logger.Debug("executing", "line", stmt.SourceLine(), "stmt", fmt.Sprintf("%T", stmt))

	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		return i.execVarDeclStmt(s)
	case *ast.AssignStmt:
		return i.execAssignStmt(s)
	case *ast.WriteStmt:
		return i.execWriteStmt(s)
	case *ast.ReadStmt:
		return i.execReadStmt(s)
	case *ast.IfStmt:
		return i.execIfStmt(s, nesting)
	}

	panic(fmt.Sprintf("execStmt: unknown statement %T", stmt))
}

func (i *Interpreter) execVarDeclStmt(s *ast.VarDeclStmt) error {
	for _, name := range s.Names {
		if err := i.store.Declare(name, s.Type); err != nil {
			return err
		}
	}

	return nil
}

// execAssignStmt falls back to the first expression token when the
// expression has no value, so a lone literal is always assignable. Lookup
// and placement errors are never swallowed.
func (i *Interpreter) execAssignStmt(s *ast.AssignStmt) error {
	if len(s.Expr) == 0 {
		return program_errors.New(program_errors.IncompleteAssignment)
	}

	value, err := evaluator.Evaluate(s.Expr, i.store)
	if errors.Is(err, evaluator.ErrNoValue) {
		literal, ok := s.Expr[0].Literal()
		if !ok {
			return program_errors.New(program_errors.WrongType)
		}

		i.logger.Debug("assignment fell back to first token", "name", s.Name, "value", literal.String())
		value = literal
	} else if err != nil {
		return err
	}

	return i.store.Write(s.Name, value)
}

func (i *Interpreter) execWriteStmt(s *ast.WriteStmt) error {
	if len(s.Expr) == 0 {
		return program_errors.New(program_errors.MissingArguments)
	}

	value, err := evaluator.Evaluate(s.Expr, i.store)
	if errors.Is(err, evaluator.ErrNoValue) {
		return program_errors.New(program_errors.MissingArguments)
	}
	if err != nil {
		return err
	}

	text := value.String()
	if !s.NoNewline {
		text += "\n"
	}

	if _, err := io.WriteString(i.out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (i *Interpreter) execReadStmt(s *ast.ReadStmt) error {
	for _, name := range s.Names {
		declared, ok := i.store.DeclaredType(name)
		if !ok {
			return program_errors.NewVariableNotFound(name)
		}

		if _, err := io.WriteString(i.out, i.opts.Prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}

		line, err := i.in.ReadLine()
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		value, err := parseInput(line, declared)
		if err != nil {
			return err
		}

		if err := i.store.Write(name, value); err != nil {
			return err
		}
	}

	return nil
}

func (i *Interpreter) execIfStmt(s *ast.IfStmt, nesting int) error {
	taken, err := i.evalCondition(s.Cond)
	if err != nil {
		return err
	}

	if !taken {
		i.logger.Debug("branch skipped", "line", s.Line)
		return nil
	}

	body, err := i.buildBody(s, nesting)
	if err != nil {
		return err
	}

	return i.execStmts(body.Stmts, nesting+1)
}

// evalCondition resolves a one-token condition directly and evaluates
// anything longer. The result must be a Boolean.
func (i *Interpreter) evalCondition(cond []lexer.Token) (bool, error) {
	var result values.Value

	if len(cond) == 1 {
		token := cond[0]
		if literal, ok := token.Literal(); ok {
			result = literal
		} else if token.Kind == lexer.VARIABLE {
			value, ok := i.store.Read(token.Value)
			if !ok {
				return false, program_errors.NewVariableNotFound(token.Value)
			}
			result = value
		} else {
			return false, program_errors.NewDetailed(program_errors.InvalidInstruction, token.String())
		}
	} else {
		value, err := evaluator.Evaluate(cond, i.store)
		if errors.Is(err, evaluator.ErrNoValue) {
			return false, program_errors.New(program_errors.WrongType)
		}
		if err != nil {
			return false, err
		}
		result = value
	}

	b, ok := result.(values.Boolean)
	if !ok {
		return false, program_errors.New(program_errors.WrongType)
	}

	return b.Value, nil
}

// buildBody parses a Si body on first entry and reuses the result after.
// Nested Si nodes belong to the cached body, so they are reused too.
func (i *Interpreter) buildBody(s *ast.IfStmt, nesting int) (*ast.Program, error) {
	if cached, ok := i.bodies.Get(s); ok {
		i.logger.Debug("body reused", "line", s.Line)
		return cached.(*ast.Program), nil
	}

	body, err := parser.Build(s.Body, parser.Options{
		MaxNesting: i.opts.MaxNesting,
		Nesting:    nesting + 1,
		Logger:     i.logger,
	})
	if err != nil {
		return nil, err
	}

	i.bodies.Add(s, body)
	return body, nil
}

// parseInput converts one input line according to the variable's declared
// type. Text that does not fit the type is a WrongType error.
func parseInput(text string, declared values.DeclaredType) (values.Value, error) {
	switch declared {
	case values.Character:
		return values.String{Value: text}, nil

	case values.Integer, values.Real:
		number, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil || math.IsInf(number, 0) || math.IsNaN(number) {
			return nil, program_errors.New(program_errors.WrongType)
		}

		if declared == values.Integer {
			if number != math.Trunc(number) {
				return nil, program_errors.New(program_errors.WrongType)
			}
			return values.Number{Value: number, Integer: true}, nil
		}
		return values.Number{Value: number, Integer: false}, nil

	case values.Logical:
		switch strings.ToLower(strings.TrimSpace(text)) {
		case "verdadero":
			return values.Boolean{Value: true}, nil
		case "falso":
			return values.Boolean{Value: false}, nil
		}
	}

	return nil, program_errors.New(program_errors.WrongType)
}
