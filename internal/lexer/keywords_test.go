package lexer

import (
	"testing"

	"github.com/kievzenit/pseudocode/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := Classifier{}

	tests := []struct {
		word string
		want Token
	}{
		{"Definir", Token{Kind: KEYWORD, Value: "Definir", Keyword: Definir}},
		{"ESCRIBIR", Token{Kind: KEYWORD, Value: "ESCRIBIR", Keyword: Escribir}},
		{"finsi", Token{Kind: KEYWORD, Value: "finsi", Keyword: FinSi}},
		{"Entero", Token{Kind: TYPE, Value: "Entero", Type: values.Integer}},
		{"Lógico", Token{Kind: TYPE, Value: "Lógico", Type: values.Logical}},
		{"Carácter", Token{Kind: TYPE, Value: "Carácter", Type: values.Character}},
		{"Verdadero", Token{Kind: BOOL, Value: "Verdadero", Bool: true}},
		{"FALSO", Token{Kind: BOOL, Value: "FALSO", Bool: false}},
		{"contador", Token{Kind: VARIABLE, Value: "contador"}},
		{"año", Token{Kind: VARIABLE, Value: "año"}},
		{"Mostrar", Token{Kind: VARIABLE, Value: "Mostrar"}},
		{"numero", Token{Kind: VARIABLE, Value: "numero"}},
		{"texto", Token{Kind: VARIABLE, Value: "texto"}},
		{"y", Token{Kind: VARIABLE, Value: "y"}},
		{"sin", Token{Kind: VARIABLE, Value: "sin"}},
		{"Proceso", Token{Kind: VARIABLE, Value: "Proceso"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.word))
		})
	}
}

func TestResolvePositionalWords(t *testing.T) {
	tests := []struct {
		src  string
		want []TokenKind
	}{
		{"Definir numero, texto Como Entero", []TokenKind{KEYWORD, VARIABLE, COMMA, VARIABLE, KEYWORD, TYPE}},
		{"Definir x, y Como Numerico", []TokenKind{KEYWORD, VARIABLE, COMMA, VARIABLE, KEYWORD, TYPE}},
		{"Definir n Como Texto", []TokenKind{KEYWORD, VARIABLE, KEYWORD, TYPE}},
		{"y <- x y verdadero", []TokenKind{VARIABLE, ASSIGN, VARIABLE, LAND, BOOL}},
		{"o <- (a) O falso", []TokenKind{VARIABLE, ASSIGN, LPAREN, VARIABLE, RPAREN, LOR, BOOL}},
		{"Escribir y", []TokenKind{KEYWORD, VARIABLE}},
		{"Escribir x, y", []TokenKind{KEYWORD, VARIABLE, COMMA, VARIABLE}},
		{"Escribir y y y", []TokenKind{KEYWORD, VARIABLE, LAND, VARIABLE}},
		{"Mostrar numero", []TokenKind{KEYWORD, VARIABLE}},
		{"mostrar <- 'a'", []TokenKind{VARIABLE, ASSIGN, STRING}},
		{"Escribir sin", []TokenKind{KEYWORD, VARIABLE}},
		{"Escribir sin Sin Saltar", []TokenKind{KEYWORD, VARIABLE, KEYWORD, KEYWORD}},
		{"Escribir saltar SinSaltar", []TokenKind{KEYWORD, VARIABLE, KEYWORD}},
		{"Escribir sinsaltar", []TokenKind{KEYWORD, VARIABLE}},
		{"sin <- saltar", []TokenKind{VARIABLE, ASSIGN, VARIABLE}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := Tokenize(tt.src, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestResolveSetsSynonymMeaning(t *testing.T) {
	tokens, err := Tokenize("Definir numero Como Numero", Options{})
	require.NoError(t, err)
	assert.Equal(t, "numero", tokens[1].Value)
	assert.Equal(t, values.Real, tokens[3].Type)

	tokens, err = Tokenize("Imprimir 'a' Sin Saltar // fin", Options{})
	require.NoError(t, err)
	assert.True(t, tokens[0].Is(Escribir))
	assert.True(t, tokens[2].Is(Sin))
	assert.True(t, tokens[3].Is(Saltar))
}

func TestClassifyKeepAccents(t *testing.T) {
	c := Classifier{KeepAccents: true}

	assert.Equal(t, VARIABLE, c.Classify("Lógico").Kind)
	assert.Equal(t, TYPE, c.Classify("Logico").Kind)
}

func TestClassifyKeepsOriginalSpelling(t *testing.T) {
	token := Classifier{}.Classify("Total")

	assert.Equal(t, VARIABLE, token.Kind)
	assert.Equal(t, "Total", token.Value)
}
