package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueText(t *testing.T) {
	tests := []struct {
		declared DeclaredType
		want     string
		kind     Kind
	}{
		{Character, "", StringKind},
		{Integer, "0", NumberKind},
		{Real, "0", NumberKind},
		{Logical, "false", BooleanKind},
	}

	for _, tt := range tests {
		t.Run(tt.declared.String(), func(t *testing.T) {
			zero, ok := tt.declared.ZeroValue()
			require.True(t, ok)
			assert.Equal(t, tt.want, zero.String())
			assert.Equal(t, tt.kind, zero.Kind())
		})
	}
}

func TestUnsetHasNoZeroValue(t *testing.T) {
	_, ok := Unset.ZeroValue()
	assert.False(t, ok)
}

func TestNumberText(t *testing.T) {
	assert.Equal(t, "25", NewNumber(25).String())
	assert.Equal(t, "-3", NewNumber(-3).String())
	assert.Equal(t, "2.5", NewNumber(2.5).String())
	assert.Equal(t, "0.1", Number{Value: 0.1}.String())
}

func TestNewNumberComputesIntegerFlag(t *testing.T) {
	assert.True(t, NewNumber(4).Integer)
	assert.False(t, NewNumber(4.5).Integer)
}

func TestSameKindIgnoresIntegerFlag(t *testing.T) {
	assert.True(t, SameKind(Number{Value: 1, Integer: true}, Number{Value: 1.5}))
	assert.False(t, SameKind(Number{}, String{}))
	assert.False(t, SameKind(Boolean{}, String{}))
}
