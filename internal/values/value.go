// Package values holds the runtime values of a pseudocode program.
//
// Value is a closed variant: Number, String and Boolean are the only
// implementations. Code that branches on a value's kind does so with a type
// switch over these three types.
package values

import "fmt"

type Kind int

const (
	NumberKind Kind = iota
	StringKind
	BooleanKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "NUMBER"
	case StringKind:
		return "STRING"
	case BooleanKind:
		return "BOOLEAN"
	default:
		panic(fmt.Sprintf("Kind.String(): received illegal value kind: %d", k))
	}
}

type Value interface {
	Kind() Kind
	// String returns the text written by Escribir.
	String() string

	value()
}

// SameKind reports whether a and b carry the same kind discriminant.
func SameKind(a, b Value) bool {
	return a.Kind() == b.Kind()
}
