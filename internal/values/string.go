package values

type String struct {
	Value string
}

func (String) Kind() Kind { return StringKind }
func (String) value()     {}

func (s String) String() string {
	return s.Value
}
