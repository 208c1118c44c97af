// Package evaluator turns a run of expression tokens into a single value.
//
// Evaluation happens in two phases. ToPostfix reorders the infix tokens by
// operator precedence (shunting yard) and resolves variables against a
// snapshot of the store. EvaluatePostfix then folds the postfix sequence with
// a value stack. Neither phase mutates the store.
package evaluator

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/kievzenit/pseudocode/internal/lexer"
	"github.com/kievzenit/pseudocode/internal/program_errors"
	"github.com/kievzenit/pseudocode/internal/values"
)

// Variables is the read side of the variable store.
type Variables interface {
	Read(name string) (values.Value, bool)
}

// Item is one entry of a postfix sequence. Operator is meaningful only when
// Value is nil.
type Item struct {
	Value    values.Value
	Operator lexer.Token
}

func (i Item) String() string {
	if i.Value != nil {
		return i.Value.String()
	}

	return i.Operator.Value
}

type Postfix []Item

func (p Postfix) String() string {
	parts := make([]string, len(p))
	for i, item := range p {
		parts[i] = item.String()
	}

	return strings.Join(parts, " ")
}

var bindingPowerLookup = map[lexer.TokenKind]int{
	lexer.LOR:      10,
	lexer.LAND:     20,
	lexer.EQ:       30,
	lexer.NEQ:      30,
	lexer.LT:       30,
	lexer.LEQ:      30,
	lexer.GT:       30,
	lexer.GEQ:      30,
	lexer.PLUS:     40,
	lexer.MINUS:    40,
	lexer.ASTERISK: 50,
	lexer.SLASH:    50,
}

// ToPostfix reorders tokens into postfix order. Operators are left
// associative: an incoming operator first pops every stacked operator with
// greater or equal binding power.
func ToPostfix(tokens []lexer.Token, vars Variables) (Postfix, error) {
	operators := arraystack.New()
	queue := arraylist.New()

	for _, token := range tokens {
		if literal, ok := token.Literal(); ok {
			queue.Add(Item{Value: literal})
			continue
		}

		switch {
		case token.Kind == lexer.VARIABLE:
			value, ok := vars.Read(token.Value)
			if !ok {
				return nil, program_errors.NewVariableNotFound(token.Value)
			}
			queue.Add(Item{Value: value})

		case token.Kind.IsOperator():
			for !operators.Empty() {
				top, _ := operators.Peek()
				stacked := top.(lexer.Token)
				if stacked.Kind == lexer.LPAREN ||
					bindingPowerLookup[stacked.Kind] < bindingPowerLookup[token.Kind] {
					break
				}

				operators.Pop()
				queue.Add(Item{Operator: stacked})
			}
			operators.Push(token)

		case token.Kind == lexer.LPAREN:
			operators.Push(token)

		case token.Kind == lexer.RPAREN:
			if err := popUntilOpenParen(operators, queue); err != nil {
				return nil, err
			}

		default:
			return nil, program_errors.NewDetailed(program_errors.InvalidInstruction, token.String())
		}
	}

	// A dangling '(' drains like any operator and makes the postfix
	// evaluation fail.
	for !operators.Empty() {
		top, _ := operators.Pop()
		queue.Add(Item{Operator: top.(lexer.Token)})
	}

	postfix := make(Postfix, 0, queue.Size())
	for _, item := range queue.Values() {
		postfix = append(postfix, item.(Item))
	}

	return postfix, nil
}

func popUntilOpenParen(operators *arraystack.Stack, queue *arraylist.List) error {
	for {
		top, ok := operators.Pop()
		if !ok {
			return program_errors.NewDetailed(program_errors.InvalidInstruction, "unmatched ')'")
		}

		stacked := top.(lexer.Token)
		if stacked.Kind == lexer.LPAREN {
			return nil
		}
		queue.Add(Item{Operator: stacked})
	}
}
