package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/kievzenit/pseudocode/internal/program_errors"
)

type Options struct {
	// Strict turns unrecognized characters and unterminated strings into
	// syntax errors instead of skipping them.
	Strict bool
	// KeepAccents is passed to the Classifier.
	KeepAccents bool
}

// Lexer tokenizes a single source line.
type Lexer struct {
	buf []rune
	pos int

	tokens     []Token
	classifier Classifier
	strict     bool
}

func NewLexer(line string, opts Options) *Lexer {
	return &Lexer{
		buf: []rune(line),
		pos: 0,

		tokens:     make([]Token, 0),
		classifier: Classifier{KeepAccents: opts.KeepAccents},
		strict:     opts.Strict,
	}
}

// Tokenize is a shorthand for NewLexer(line, opts).Tokenize().
func Tokenize(line string, opts Options) ([]Token, error) {
	return NewLexer(line, opts).Tokenize()
}

func (l *Lexer) Tokenize() ([]Token, error) {
	for l.hasChars() {
		switch {
		case l.isCurrSkippable():

		case l.isCurrComment():
			l.classifier.Resolve(l.tokens)
			return l.tokens, nil

		case l.isCurrDigit():
			l.emit(l.processNumber(false))

		case l.isCurrSignedNumber():
			l.advance()
			l.emit(l.processNumber(true))

		case l.isCurrIdentifier():
			l.emit(l.processIdentifier())

		case l.isCurrQuote():
			token, err := l.processStringLiteral()
			if err != nil {
				return nil, err
			}
			l.emit(token)

		case l.isCurrPunctuation():
			l.emit(l.processPunctuation())

		default:
			if l.strict {
				return nil, program_errors.NewDetailed(
					program_errors.SyntaxError,
					fmt.Sprintf("unexpected character: '%c'", l.read()))
			}
		}

		l.advance()
	}

	l.classifier.Resolve(l.tokens)
	return l.tokens, nil
}

func (l *Lexer) emit(token Token) {
	l.tokens = append(l.tokens, token)
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r', ';':
		return true
	}

	return false
}

func (l *Lexer) isCurrComment() bool {
	return l.read() == '/' && l.hasNext() && l.next() == '/'
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrIdentifier() bool {
	return unicode.IsLetter(l.read()) || l.read() == '_'
}

func (l *Lexer) isCurrQuote() bool {
	return l.read() == '"' || l.read() == '\''
}

// isCurrSignedNumber reports a '-' that directly follows an assignment and
// precedes a digit. Such a minus is part of the number, not an operator.
func (l *Lexer) isCurrSignedNumber() bool {
	if l.read() != '-' || !l.hasNext() {
		return false
	}

	if len(l.tokens) == 0 || l.tokens[len(l.tokens)-1].Kind != ASSIGN {
		return false
	}

	next := l.next()
	return next >= '0' && next <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '=', '<', '>', '&', '|', '(', ')', ',':
		return true
	case '!':
		return l.hasNext() && l.next() == '='
	}

	return false
}

func (l *Lexer) processNumber(negative bool) Token {
	numberBuf := make([]rune, 0)
	if negative {
		numberBuf = append(numberBuf, '-')
	}
	numberBuf = append(numberBuf, l.read())
	l.advance()

	var isFloat bool
	for l.hasChars() {
		if !isFloat && l.read() == '.' {
			if !l.hasNext() || l.next() < '0' || l.next() > '9' {
				break
			}

			isFloat = true
			numberBuf = append(numberBuf, l.read())
			l.advance()
			continue
		}

		if !l.isCurrDigit() {
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}
	l.unread()

	literal := string(numberBuf)
	// The buffer only ever holds an optional sign, digits and one dot.
	number, _ := strconv.ParseFloat(literal, 64)

	return Token{
		Kind:    NUMBER,
		Value:   literal,
		Number:  number,
		Integer: !isFloat,
	}
}

func (l *Lexer) processIdentifier() Token {
	identifierBuf := make([]rune, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrIdentifier() && !l.isCurrDigit() {
			break
		}

		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	l.unread()

	return l.classifier.Classify(string(identifierBuf))
}

// processStringLiteral copies everything up to the matching quote verbatim.
// There are no escape sequences.
func (l *Lexer) processStringLiteral() (Token, error) {
	quote := l.read()
	l.advance()

	stringBuf := make([]rune, 0)
	var foundClosingQuote bool
	for l.hasChars() {
		if l.read() == quote {
			foundClosingQuote = true
			break
		}

		stringBuf = append(stringBuf, l.read())
		l.advance()
	}

	if !foundClosingQuote {
		if l.strict {
			return Token{}, program_errors.NewDetailed(
				program_errors.SyntaxError,
				fmt.Sprintf("expected '%c'", quote))
		}
		l.unread()
	}

	return Token{
		Kind:  STRING,
		Value: string(stringBuf),
	}, nil
}

func (l *Lexer) processLessThan() Token {
	if l.hasNext() {
		switch l.next() {
		case '-':
			l.advance()
			return Token{
				Kind:  ASSIGN,
				Value: "<-",
			}
		case '=':
			l.advance()
			return Token{
				Kind:  LEQ,
				Value: "<=",
			}
		case '>':
			l.advance()
			return Token{
				Kind:  NEQ,
				Value: "<>",
			}
		}
	}

	return Token{
		Kind:  LT,
		Value: "<",
	}
}

func (l *Lexer) processGreaterThan() Token {
	if l.hasNext() && l.next() == '=' {
		l.advance()
		return Token{
			Kind:  GEQ,
			Value: ">=",
		}
	}

	return Token{
		Kind:  GT,
		Value: ">",
	}
}

func (l *Lexer) processEquals() Token {
	if l.hasNext() && l.next() == '=' {
		l.advance()
		return Token{
			Kind:  EQ,
			Value: "==",
		}
	}

	return Token{
		Kind:  ASSIGN,
		Value: "=",
	}
}

// processDoubled handles operators that may be written once or twice, like
// & and &&.
func (l *Lexer) processDoubled(kind TokenKind) Token {
	ch := l.read()
	if l.hasNext() && l.next() == ch {
		l.advance()
		return Token{
			Kind:  kind,
			Value: string([]rune{ch, ch}),
		}
	}

	return Token{
		Kind:  kind,
		Value: string(ch),
	}
}

func (l *Lexer) processPunctuation() Token {
	switch l.read() {
	case '+':
		return Token{
			Kind:  PLUS,
			Value: "+",
		}
	case '-':
		return Token{
			Kind:  MINUS,
			Value: "-",
		}
	case '*':
		return Token{
			Kind:  ASTERISK,
			Value: "*",
		}
	case '/':
		return Token{
			Kind:  SLASH,
			Value: "/",
		}
	case '=':
		return l.processEquals()
	case '!':
		l.advance()
		return Token{
			Kind:  NEQ,
			Value: "!=",
		}
	case '<':
		return l.processLessThan()
	case '>':
		return l.processGreaterThan()
	case '&':
		return l.processDoubled(LAND)
	case '|':
		return l.processDoubled(LOR)
	case '(':
		return Token{
			Kind:  LPAREN,
			Value: "(",
		}
	case ')':
		return Token{
			Kind:  RPAREN,
			Value: ")",
		}
	case ',':
		return Token{
			Kind:  COMMA,
			Value: ",",
		}
	}

	panic("unreachable")
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) hasNext() bool {
	return l.pos+1 < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) next() rune { return l.buf[l.pos+1] }
func (l *Lexer) read() rune { return l.buf[l.pos] }
func (l *Lexer) unread()    { l.pos-- }
