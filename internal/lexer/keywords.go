package lexer

import (
	"unicode"

	"github.com/kievzenit/pseudocode/internal/values"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var keywordLookup = map[string]Keyword{
	"algoritmo":    Algoritmo,
	"finalgoritmo": FinAlgoritmo,
	"definir":      Definir,
	"como":         Como,
	"escribir":     Escribir,
	"leer":         Leer,
	"si":           Si,
	"entonces":     Entonces,
	"finsi":        FinSi,
}

var typeLookup = map[string]values.DeclaredType{
	"caracter": values.Character,
	"entero":   values.Integer,
	"real":     values.Real,
	"logico":   values.Logical,
}

var booleanLookup = map[string]bool{
	"verdadero": true,
	"falso":     false,
}

// The words below are ordinary variable names except in the positions
// Resolve checks for them.

var writeSynonyms = map[string]bool{
	"imprimir": true,
	"mostrar":  true,
}

var typeSynonyms = map[string]values.DeclaredType{
	"texto":    values.Character,
	"cadena":   values.Character,
	"numero":   values.Real,
	"numerico": values.Real,
}

var operatorWords = map[string]TokenKind{
	"y": LAND,
	"o": LOR,
}

// Classifier maps identifier text to keywords, type names and boolean
// literals. Anything else is a variable.
type Classifier struct {
	// KeepAccents disables accent folding, so "Lógico" no longer matches
	// "logico".
	KeepAccents bool
}

// Classify never fails: unknown words become VARIABLE tokens carrying the
// original spelling.
func (c Classifier) Classify(word string) Token {
	key := c.fold(word)

	if keyword, ok := keywordLookup[key]; ok {
		return Token{
			Kind:    KEYWORD,
			Value:   word,
			Keyword: keyword,
		}
	}

	if declaredType, ok := typeLookup[key]; ok {
		return Token{
			Kind:  TYPE,
			Value: word,
			Type:  declaredType,
		}
	}

	if b, ok := booleanLookup[key]; ok {
		return Token{
			Kind:  BOOL,
			Value: word,
			Bool:  b,
		}
	}

	return Token{
		Kind:  VARIABLE,
		Value: word,
	}
}

// Resolve rewrites, in place, the variables of one line that act as keywords
// by position:
//
//   - Imprimir/Mostrar leading a line that is not an assignment
//   - Texto/Cadena/Numero/Numerico right after Como
//   - Y/O between two operands
//   - a trailing "Sin Saltar" or "SinSaltar" on an Escribir line with
//     arguments
func (c Classifier) Resolve(tokens []Token) {
	if len(tokens) == 0 {
		return
	}

	first := &tokens[0]
	if first.Kind == VARIABLE && writeSynonyms[c.fold(first.Value)] &&
		(len(tokens) == 1 || tokens[1].Kind != ASSIGN) {
		first.Kind = KEYWORD
		first.Keyword = Escribir
	}

	for i := 1; i < len(tokens); i++ {
		token := &tokens[i]
		if token.Kind != VARIABLE {
			continue
		}

		if tokens[i-1].Is(Como) {
			if declaredType, ok := typeSynonyms[c.fold(token.Value)]; ok {
				token.Kind = TYPE
				token.Type = declaredType
			}
			continue
		}

		kind, ok := operatorWords[c.fold(token.Value)]
		if ok && i+1 < len(tokens) && endsOperand(tokens[i-1]) && startsOperand(tokens[i+1]) {
			token.Kind = kind
		}
	}

	if first.Is(Escribir) {
		c.resolveWriteSuffix(tokens)
	}
}

func (c Classifier) resolveWriteSuffix(tokens []Token) {
	n := len(tokens)
	if n >= 3 && c.isWord(tokens[n-1], "sinsaltar") {
		tokens[n-1].Kind = KEYWORD
		tokens[n-1].Keyword = SinSaltar
		return
	}

	if n >= 4 &&
		c.isWord(tokens[n-2], "sin") &&
		c.isWord(tokens[n-1], "saltar") {
		tokens[n-2].Kind = KEYWORD
		tokens[n-2].Keyword = Sin
		tokens[n-1].Kind = KEYWORD
		tokens[n-1].Keyword = Saltar
	}
}

func (c Classifier) isWord(token Token, word string) bool {
	return token.Kind == VARIABLE && c.fold(token.Value) == word
}

func endsOperand(token Token) bool {
	switch token.Kind {
	case NUMBER, STRING, BOOL, VARIABLE, RPAREN:
		return true
	}

	return false
}

func startsOperand(token Token) bool {
	switch token.Kind {
	case NUMBER, STRING, BOOL, VARIABLE, LPAREN:
		return true
	}

	return false
}

func (c Classifier) fold(word string) string {
	folded := cases.Fold().String(word)
	if c.KeepAccents {
		return folded
	}

	stripped, _, err := transform.String(stripAccents(), folded)
	if err != nil {
		return folded
	}

	return stripped
}

// Transformers are stateful, so each call builds its own chain.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
