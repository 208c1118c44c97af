package evaluator

import (
	"testing"

	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/program_errors"
	"github.com/kievzenit/pseudocode/internal/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapVariables map[string]values.Value

func (m mapVariables) Read(name string) (values.Value, bool) {
	v, ok := m[name]
	return v, ok
}

func tokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()

	tokens, err := lexer.Tokenize(src, lexer.Options{})
	require.NoError(t, err)

	return tokens
}

func eval(t *testing.T, src string, vars mapVariables) (values.Value, error) {
	t.Helper()

	if vars == nil {
		vars = mapVariables{}
	}
	return Evaluate(tokenize(t, src), vars)
}

func TestToPostfixOrder(t *testing.T) {
	postfix, err := ToPostfix(tokenize(t, "(5*4+3*2)-1"), mapVariables{})
	require.NoError(t, err)

	assert.Equal(t, "5 4 * 3 2 * + 1 -", postfix.String())
}

func TestToPostfixIsLeftAssociative(t *testing.T) {
	postfix, err := ToPostfix(tokenize(t, "8 - 3 - 2"), mapVariables{})
	require.NoError(t, err)

	assert.Equal(t, "8 3 - 2 -", postfix.String())
}

func TestEvaluateArithmetic(t *testing.T) {
	result, err := eval(t, "(5*4+3*2)-1", nil)
	require.NoError(t, err)

	assert.Equal(t, values.Number{Value: 25, Integer: true}, result)
}

func TestEvaluateRecomputesIntegerFlag(t *testing.T) {
	tests := []struct {
		src  string
		want values.Number
	}{
		{"5 / 2", values.Number{Value: 2.5, Integer: false}},
		{"2.5 * 2", values.Number{Value: 5, Integer: true}},
		{"1.5 + 1.5", values.Number{Value: 3, Integer: true}},
		{"8 - 3 - 2", values.Number{Value: 3, Integer: true}},
		{"2 + 3 * 4", values.Number{Value: 14, Integer: true}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			result, err := eval(t, tt.src, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestEvaluateComparisons(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"5 == 5.05", true},
		{"5 == 5.2", false},
		{"5 != 5.05", false},
		{"5 < 5.05", true},
		{"5 <= 5.05", true},
		{"5.05 > 5", true},
		{"5 >= 5.05", false},
		{"1 + 1 == 2 & 3 > 2", true},
		{"1 > 2 | 2 > 1", true},
		{"1 > 2 O 2 > 3", false},
		{"verdadero Y falso", false},
		{"verdadero == verdadero", true},
		{"'a' == 'a'", true},
		{"'a' != 'b'", true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			result, err := eval(t, tt.src, nil)
			require.NoError(t, err)
			assert.Equal(t, values.Boolean{Value: tt.want}, result)
		})
	}
}

func TestEvaluateStringConcatenationIsAssociative(t *testing.T) {
	flat, err := eval(t, "'a' + 'b' + 'c'", nil)
	require.NoError(t, err)

	grouped, err := eval(t, "('a' + 'b') + 'c'", nil)
	require.NoError(t, err)

	assert.Equal(t, values.String{Value: "abc"}, flat)
	assert.Equal(t, flat, grouped)
}

func TestEvaluateResolvesVariables(t *testing.T) {
	vars := mapVariables{
		"a":      values.Number{Value: 3, Integer: true},
		"nombre": values.String{Value: "Ana"},
	}

	result, err := eval(t, "a * a + 1", vars)
	require.NoError(t, err)
	assert.Equal(t, values.Number{Value: 10, Integer: true}, result)

	result, err = eval(t, "'Hola ' + nombre", vars)
	require.NoError(t, err)
	assert.Equal(t, values.String{Value: "Hola Ana"}, result)
}

func TestEvaluateUnknownVariable(t *testing.T) {
	_, err := eval(t, "a + fantasma", mapVariables{"a": values.NewNumber(1)})

	require.ErrorIs(t, err, program_errors.ErrVariableNotFound)
	var programErr *program_errors.Error
	require.ErrorAs(t, err, &programErr)
	assert.Equal(t, "fantasma", programErr.Name)
}

func TestEvaluateNoValue(t *testing.T) {
	tests := []string{
		"'a' + 1",
		"'a' - 'b'",
		"'a' < 'b'",
		"verdadero + falso",
		"1 Y 2",
		"1 / 0",
		"(1 + 2",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := eval(t, src, nil)
			assert.ErrorIs(t, err, ErrNoValue)
		})
	}
}

func TestEvaluateEmptyExpression(t *testing.T) {
	_, err := Evaluate(nil, mapVariables{})
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestEvaluateMissingOperandIsZero(t *testing.T) {
	result, err := eval(t, "- 5", nil)
	require.NoError(t, err)

	assert.Equal(t, values.Number{Value: -5, Integer: true}, result)
}

func TestEvaluateInvalidTokens(t *testing.T) {
	tests := []string{
		"1 + 2)",
		"x <- 1",
		"Escribir 1",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := eval(t, src, mapVariables{"x": values.NewNumber(0)})
			assert.ErrorIs(t, err, program_errors.ErrInvalidInstruction)
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	vars := mapVariables{"x": values.Number{Value: 2.5}}
	tokens := tokenize(t, "x * 2 + 1 > 5")

	first, err := Evaluate(tokens, vars)
	require.NoError(t, err)
	second, err := Evaluate(tokens, vars)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, values.Number{Value: 2.5}, vars["x"])
}
