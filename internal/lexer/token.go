package lexer

import (
	"fmt"
	"strconv"

	"github.com/kievzenit/pseudocode/internal/values"
)

type TokenKind int

const (
	NUMBER TokenKind = iota
	STRING
	BOOL

	VARIABLE
	TYPE
	KEYWORD

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	EQ  // ==
	NEQ // != <>
	LT  // <
	LEQ // <=
	GT  // >
	GEQ // >=

	LAND // & && Y
	LOR  // | || O

	ASSIGN // <- =

	LPAREN // (
	RPAREN // )
	COMMA  // ,
)

func (tk TokenKind) String() string {
	switch tk {
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case BOOL:
		return "BOOL"
	case VARIABLE:
		return "VARIABLE"
	case TYPE:
		return "TYPE"
	case KEYWORD:
		return "KEYWORD"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case LEQ:
		return "LEQ"
	case GT:
		return "GT"
	case GEQ:
		return "GEQ"
	case LAND:
		return "LAND"
	case LOR:
		return "LOR"
	case ASSIGN:
		return "ASSIGN"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case COMMA:
		return "COMMA"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// IsOperator reports whether the kind is a binary arithmetic, comparison or
// logical operator.
func (tk TokenKind) IsOperator() bool {
	switch tk {
	case PLUS, MINUS, ASTERISK, SLASH,
		EQ, NEQ, LT, LEQ, GT, GEQ,
		LAND, LOR:
		return true
	}

	return false
}

type Keyword int

const (
	Algoritmo Keyword = iota
	FinAlgoritmo
	Definir
	Como
	Escribir
	Leer
	Si
	Entonces
	FinSi
	Sin
	Saltar
	SinSaltar
)

func (k Keyword) String() string {
	switch k {
	case Algoritmo:
		return "Algoritmo"
	case FinAlgoritmo:
		return "FinAlgoritmo"
	case Definir:
		return "Definir"
	case Como:
		return "Como"
	case Escribir:
		return "Escribir"
	case Leer:
		return "Leer"
	case Si:
		return "Si"
	case Entonces:
		return "Entonces"
	case FinSi:
		return "FinSi"
	case Sin:
		return "Sin"
	case Saltar:
		return "Saltar"
	case SinSaltar:
		return "SinSaltar"
	default:
		panic(fmt.Sprintf("Keyword.String(): received illegal keyword: %d", k))
	}
}

// Token is a value type; copies are independent. Only the fields matching
// Kind are meaningful: Number/Integer for NUMBER, Bool for BOOL, Keyword for
// KEYWORD, Type for TYPE, and Value for STRING, VARIABLE and operators.
type Token struct {
	Kind  TokenKind
	Value string

	Number  float64
	Integer bool
	Bool    bool
	Keyword Keyword
	Type    values.DeclaredType
}

func (t Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, STRING, BOOL, VARIABLE, TYPE, KEYWORD:
		return true
	}

	return false
}

// Is reports whether t is the given keyword.
func (t Token) Is(keyword Keyword) bool {
	return t.Kind == KEYWORD && t.Keyword == keyword
}

// Literal converts a literal token to its runtime value.
func (t Token) Literal() (values.Value, bool) {
	switch t.Kind {
	case NUMBER:
		return values.Number{Value: t.Number, Integer: t.Integer}, true
	case STRING:
		return values.String{Value: t.Value}, true
	case BOOL:
		return values.Boolean{Value: t.Bool}, true
	}

	return nil, false
}

func (t Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	switch t.Kind {
	case NUMBER:
		return fmt.Sprintf("%s(%s)", t.Kind, strconv.FormatFloat(t.Number, 'f', -1, 64))
	case BOOL:
		return fmt.Sprintf("%s(%t)", t.Kind, t.Bool)
	case KEYWORD:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Keyword)
	case TYPE:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Type)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
