package values

import "fmt"

// DeclaredType is the type named in a Definir statement.
type DeclaredType int

const (
	Unset DeclaredType = iota
	Character
	Integer
	Real
	Logical
)

func (t DeclaredType) String() string {
	switch t {
	case Unset:
		return "Unset"
	case Character:
		return "Caracter"
	case Integer:
		return "Entero"
	case Real:
		return "Real"
	case Logical:
		return "Logico"
	default:
		panic(fmt.Sprintf("DeclaredType.String(): received illegal type: %d", t))
	}
}

// ZeroValue returns the value a freshly declared variable holds. Unset has no
// zero value.
func (t DeclaredType) ZeroValue() (Value, bool) {
	switch t {
	case Character:
		return String{}, true
	case Integer:
		return Number{Value: 0, Integer: true}, true
	case Real:
		return Number{Value: 0, Integer: false}, true
	case Logical:
		return Boolean{}, true
	}

	return nil, false
}
