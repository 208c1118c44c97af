// Package program_errors defines the fatal errors a pseudocode program can
// stop with. Every error carries a fixed numeric code.
package program_errors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	SyntaxError Kind = iota
	MissingTypeOrUnvalidType
	MissingArguments
	WrongType
	InvalidInstruction
	IncompleteAssignment
	VariableNotFound
)

func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case MissingTypeOrUnvalidType:
		return "MissingTypeOrUnvalidType"
	case MissingArguments:
		return "MissingArguments"
	case WrongType:
		return "WrongType"
	case InvalidInstruction:
		return "InvalidInstruction"
	case IncompleteAssignment:
		return "IncompleteAssignment"
	case VariableNotFound:
		return "VariableNotFound"
	default:
		panic(fmt.Sprintf("Kind.String(): received illegal error kind: %d", k))
	}
}

// Code is the number shown to the user.
func (k Kind) Code() int {
	switch k {
	case SyntaxError:
		return -1
	case MissingTypeOrUnvalidType:
		return 46
	case MissingArguments:
		return 53
	case WrongType:
		return 125
	case InvalidInstruction:
		return 106
	case IncompleteAssignment:
		return 89
	case VariableNotFound:
		return 215
	default:
		panic(fmt.Sprintf("Kind.Code(): received illegal error kind: %d", k))
	}
}

func (k Kind) message() string {
	switch k {
	case SyntaxError:
		return "Error de sintaxis."
	case MissingTypeOrUnvalidType:
		return "Falta tipo de dato o tipo no válido."
	case MissingArguments:
		return "Faltan parámetros."
	case WrongType:
		return "No coinciden los tipos."
	case InvalidInstruction:
		return "Instrucción no válida."
	case IncompleteAssignment:
		return "Asignación incompleta."
	case VariableNotFound:
		return "Variable no inicializada"
	default:
		panic(fmt.Sprintf("Kind.message(): received illegal error kind: %d", k))
	}
}

// Error is the single fatal value a run ends with.
type Error struct {
	Kind Kind
	// Name is the offending variable for VariableNotFound.
	Name string
	// Detail is optional extra context, e.g. the unexpected character.
	Detail string
	// Line is the 1-based source line, or 0 when unknown.
	Line int
}

var (
	ErrSyntax                   = &Error{Kind: SyntaxError}
	ErrMissingTypeOrUnvalidType = &Error{Kind: MissingTypeOrUnvalidType}
	ErrMissingArguments         = &Error{Kind: MissingArguments}
	ErrWrongType                = &Error{Kind: WrongType}
	ErrInvalidInstruction       = &Error{Kind: InvalidInstruction}
	ErrIncompleteAssignment     = &Error{Kind: IncompleteAssignment}
	ErrVariableNotFound         = &Error{Kind: VariableNotFound}
)

func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

func NewDetailed(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func NewVariableNotFound(name string) *Error {
	return &Error{Kind: VariableNotFound, Name: name}
}

func (e *Error) Code() int {
	return e.Kind.Code()
}

func (e *Error) Error() string {
	return fmt.Sprintf("ERROR %d: %s", e.Code(), e.GetMessage())
}

func (e *Error) GetMessage() string {
	msg := e.Kind.message()
	if e.Kind == VariableNotFound {
		msg = fmt.Sprintf("%s (%s)", msg, e.Name)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Detail)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}

	return msg
}

// AtLine annotates a program error with the line it happened on. The first
// annotation wins, so nested statements keep their own line. Other errors are
// returned unchanged.
func AtLine(err error, line int) error {
	var programErr *Error
	if !errors.As(err, &programErr) || programErr.Line > 0 {
		return err
	}

	annotated := *programErr
	annotated.Line = line
	return &annotated
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrWrongType)
// works regardless of name or detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}
