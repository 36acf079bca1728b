package symbol

import (
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		text string
		want Operator
	}{
		{"OR", Or},
		{"or", Or},
		{"|", Or},
		{"And", And},
		{"&", And},
		{"xor", Xor},
		{"^", Xor},
		{"NAND", Nand},
		{"nor", Nor},
		{"IMP", Imp},
		{"->", Imp},
		{"equ", Equ},
		{"=", Equ},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			op, ok := LookupOperator(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, op)
		})
	}

	for _, bad := range []string{"", "NOT", "!", "-", "ANDOR"} {
		_, ok := LookupOperator(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestMatchShort(t *testing.T) {
	op, n, ok := MatchShort("->B")
	require.True(t, ok)
	assert.Equal(t, Imp, op)
	assert.Equal(t, 2, n)

	op, n, ok = MatchShort("=B")
	require.True(t, ok)
	assert.Equal(t, Equ, op)
	assert.Equal(t, 1, n)

	_, _, ok = MatchShort("-B")
	assert.False(t, ok)
	_, _, ok = MatchShort("")
	assert.False(t, ok)
}

func TestOperator_Apply(t *testing.T) {
	// rows: (a,b) = 00, 01, 10, 11
	truth := map[Operator][4]bool{
		Or:   {false, true, true, true},
		And:  {false, false, false, true},
		Xor:  {false, true, true, false},
		Nand: {true, true, true, false},
		Nor:  {true, false, false, false},
		Imp:  {true, true, false, true},
		Equ:  {true, false, false, true},
	}

	for op, want := range truth {
		t.Run(op.String(), func(t *testing.T) {
			for i := 0; i < 4; i++ {
				a, b := i&2 != 0, i&1 != 0
				assert.Equal(t, want[i], op.Apply(a, b), "a=%v b=%v", a, b)
			}
		})
	}
}

func TestVariables(t *testing.T) {
	t.Run("ids follow first-seen order", func(t *testing.T) {
		v := NewVariables()
		b, err := v.ID("B")
		require.NoError(t, err)
		a, err := v.ID("A")
		require.NoError(t, err)
		again, err := v.ID("B")
		require.NoError(t, err)

		assert.Equal(t, 0, b)
		assert.Equal(t, 1, a)
		assert.Equal(t, b, again)
		assert.Equal(t, []string{"B", "A"}, v.Names())
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		v := NewVariables()
		_, _ = v.ID("a")
		_, _ = v.ID("A")
		assert.Equal(t, 2, v.Len())
	})

	t.Run("65th variable is rejected", func(t *testing.T) {
		v := NewVariables()
		for i := 0; i < MaxVariables; i++ {
			_, err := v.ID(fmt.Sprintf("v%d", i))
			require.NoError(t, err)
		}
		_, err := v.ID("overflow")
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.TooManyVariables))

		id, err := v.ID("v10")
		require.NoError(t, err)
		assert.Equal(t, 10, id)
	})
}
