package evaluator

import (
	"math"

	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/values"
)

// equalityTolerance is the absolute difference under which two numbers
// compare equal. Ordering comparisons are exact.
const equalityTolerance = 0.1

// apply looks the operator up in the table of the operands' kind. Operands of
// different kinds have no table.
func apply(op lexer.TokenKind, left, right values.Value) (values.Value, bool) {
	switch l := left.(type) {
	case values.Number:
		r, ok := right.(values.Number)
		if !ok {
			return nil, false
		}
		return applyNumber(op, l, r)

	case values.String:
		r, ok := right.(values.String)
		if !ok {
			return nil, false
		}
		return applyString(op, l, r)

	case values.Boolean:
		r, ok := right.(values.Boolean)
		if !ok {
			return nil, false
		}
		return applyBoolean(op, l, r)
	}

	return nil, false
}

// applyNumber recomputes the Integer flag of arithmetic results instead of
// inheriting it, so 5 / 2 is real and 2.5 * 2 is an integer.
func applyNumber(op lexer.TokenKind, l, r values.Number) (values.Value, bool) {
	switch op {
	case lexer.PLUS:
		return values.NewNumber(l.Value + r.Value), true
	case lexer.MINUS:
		return values.NewNumber(l.Value - r.Value), true
	case lexer.ASTERISK:
		return values.NewNumber(l.Value * r.Value), true
	case lexer.SLASH:
		if r.Value == 0 {
			return nil, false
		}
		return values.NewNumber(l.Value / r.Value), true
	case lexer.EQ:
		return values.Boolean{Value: numbersEqual(l, r)}, true
	case lexer.NEQ:
		return values.Boolean{Value: !numbersEqual(l, r)}, true
	case lexer.LT:
		return values.Boolean{Value: l.Value < r.Value}, true
	case lexer.LEQ:
		return values.Boolean{Value: l.Value <= r.Value}, true
	case lexer.GT:
		return values.Boolean{Value: l.Value > r.Value}, true
	case lexer.GEQ:
		return values.Boolean{Value: l.Value >= r.Value}, true
	}

	return nil, false
}

func numbersEqual(l, r values.Number) bool {
	return math.Abs(l.Value-r.Value) < equalityTolerance
}

func applyString(op lexer.TokenKind, l, r values.String) (values.Value, bool) {
	switch op {
	case lexer.PLUS:
		return values.String{Value: l.Value + r.Value}, true
	case lexer.EQ:
		return values.Boolean{Value: l.Value == r.Value}, true
	case lexer.NEQ:
		return values.Boolean{Value: l.Value != r.Value}, true
	}

	return nil, false
}

func applyBoolean(op lexer.TokenKind, l, r values.Boolean) (values.Value, bool) {
	switch op {
	case lexer.LAND:
		return values.Boolean{Value: l.Value && r.Value}, true
	case lexer.LOR:
		return values.Boolean{Value: l.Value || r.Value}, true
	case lexer.EQ:
		return values.Boolean{Value: l.Value == r.Value}, true
	case lexer.NEQ:
		return values.Boolean{Value: l.Value != r.Value}, true
	}

	return nil, false
}
