package values

type Boolean struct {
	Value bool
}

func (Boolean) Kind() Kind { return BooleanKind }
func (Boolean) value()     {}

// String uses the host spelling, so a declared Logico prints "false".
func (b Boolean) String() string {
	if b.Value {
		return "true"
	}

	return "false"
}
