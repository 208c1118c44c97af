package evaluator

import (
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/values"
)

// ErrNoValue reports an expression that evaluated to nothing: mismatched
// operand kinds, an operator undefined for a kind, or an empty expression.
// Callers must treat it as a failure, never as zero or false.
var ErrNoValue = errors.New("expression has no value")

// EvaluatePostfix folds a postfix sequence with a value stack. A missing
// operand is read as integer zero, so "- 5" evaluates to -5.
func EvaluatePostfix(postfix Postfix) (values.Value, bool) {
	stack := arraystack.New()

	for _, item := range postfix {
		if item.Value != nil {
			stack.Push(item.Value)
			continue
		}

		right := popOperand(stack)
		left := popOperand(stack)

		result, ok := apply(item.Operator.Kind, left, right)
		if !ok {
			return nil, false
		}
		stack.Push(result)
	}

	top, ok := stack.Peek()
	if !ok {
		return nil, false
	}

	return top.(values.Value), true
}

// Evaluate runs both phases. It returns ErrNoValue when the expression is
// well formed but has no value, and a program error when a variable is
// missing or a token cannot be placed.
func Evaluate(tokens []lexer.Token, vars Variables) (values.Value, error) {
	postfix, err := ToPostfix(tokens, vars)
	if err != nil {
		return nil, err
	}

	result, ok := EvaluatePostfix(postfix)
	if !ok {
		return nil, ErrNoValue
	}

	return result, nil
}

func popOperand(stack *arraystack.Stack) values.Value {
	top, ok := stack.Pop()
	if !ok {
		return values.Number{Value: 0, Integer: true}
	}

	return top.(values.Value)
}
