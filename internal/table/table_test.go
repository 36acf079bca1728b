package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/DjordjeVuckovic/ttgen/internal/eval"
	"github.com/DjordjeVuckovic/ttgen/internal/rpn"
	"github.com/DjordjeVuckovic/ttgen/internal/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, expr string, vars *symbol.Variables) *Table {
	t.Helper()
	res, err := rpn.Convert(expr, vars)
	require.NoError(t, err)
	tbl, err := New(res.Variables, res.Program)
	require.NoError(t, err)
	return tbl
}

func render(t *testing.T, tbl *Table, g Glyphs) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tbl.WriteText(&buf, g))
	return buf.String()
}

func TestWriteText(t *testing.T) {
	t.Run("A AND B", func(t *testing.T) {
		got := render(t, build(t, "A AND B", nil), Binary)
		assert.Equal(t, "A B\n1 1  1\n1 0  0\n0 1  0\n0 0  0\n", got)
	})

	t.Run("A XOR A is always false", func(t *testing.T) {
		got := render(t, build(t, "A XOR A", nil), Binary)
		assert.Equal(t, "A\n1  0\n0  0\n", got)
	})

	t.Run("letter glyphs", func(t *testing.T) {
		got := render(t, build(t, "A -> B", nil), Letters)
		assert.Equal(t, "A B\nT T  T\nT F  F\nF T  T\nF F  T\n", got)
	})

	t.Run("columns pad to name width", func(t *testing.T) {
		got := render(t, build(t, "long OR x", nil), Binary)
		lines := strings.Split(got, "\n")
		assert.Equal(t, "long x", lines[0])
		assert.Equal(t, "1    1  1", lines[1])
		assert.Equal(t, "0    0  0", lines[4])
	})

	t.Run("declared order", func(t *testing.T) {
		decl, err := rpn.Convert("/ B A", nil)
		require.NoError(t, err)
		got := render(t, build(t, "A AND !B", decl.Variables), Binary)
		assert.Equal(t, "B A\n1 1  0\n1 0  0\n0 1  1\n0 0  0\n", got)
	})
}

func TestEach(t *testing.T) {
	t.Run("rows descend from 2^n-1 to 0", func(t *testing.T) {
		tbl := build(t, "A OR B OR C", nil)
		var seen []uint64
		require.NoError(t, tbl.Each(func(r Row) error {
			seen = append(seen, r.Index)
			return nil
		}))
		assert.Equal(t, []uint64{7, 6, 5, 4, 3, 2, 1, 0}, seen)
	})

	t.Run("variable 0 is the most significant bit", func(t *testing.T) {
		tbl := build(t, "A AND B", nil)
		var pairs [][2]bool
		require.NoError(t, tbl.Each(func(r Row) error {
			pairs = append(pairs, [2]bool{r.Bit(0), r.Bit(1)})
			return nil
		}))
		assert.Equal(t, [][2]bool{{true, true}, {true, false}, {false, true}, {false, false}}, pairs)
		assert.Equal(t, eval.Assignment(0b01), tbl.AssignmentOf(2))
	})

	t.Run("row count is 2^n", func(t *testing.T) {
		vars := []string{"A", "B", "C", "D", "E", "F"}
		for n := 1; n <= len(vars); n++ {
			tbl := build(t, strings.Join(vars[:n], " AND "), nil)
			rows, err := tbl.Collect(MaxListedVariables)
			require.NoError(t, err)
			assert.Len(t, rows, 1<<n)

			out := render(t, tbl, Binary)
			assert.Equal(t, (1<<n)+1, strings.Count(out, "\n"))
		}
	})

	t.Run("collect ceiling ignores larger limits", func(t *testing.T) {
		vars := make([]string, MaxListedVariables+1)
		for i := range vars {
			vars[i] = fmt.Sprintf("V%d", i)
		}
		tbl := build(t, strings.Join(vars, " OR "), nil)
		_, err := tbl.Collect(64)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 20")
	})

	t.Run("no variables still yields one row", func(t *testing.T) {
		tbl := &Table{Program: rpn.Program{{Code: rpn.PushVar, Var: 0}}}
		var rows []Row
		require.NoError(t, tbl.Each(func(r Row) error {
			rows = append(rows, r)
			return nil
		}))
		require.Len(t, rows, 1)
		assert.Equal(t, uint64(0), rows[0].Index)
		assert.False(t, rows[0].Value)
		assert.Equal(t, "\n 0\n", render(t, tbl, Binary))
	})

	t.Run("last assignment with 64 variables", func(t *testing.T) {
		tbl := &Table{Variables: make([]string, 64)}
		assert.Equal(t, ^uint64(0), tbl.Last())
		assert.Equal(t, eval.Assignment(1), tbl.AssignmentOf(1<<63))
	})
}

func TestNew_FaultsBeforeRendering(t *testing.T) {
	tests := []struct {
		expr string
		kind apperr.Kind
	}{
		{"A B", apperr.UnbalancedProgram},
		{"A AND", apperr.ValueStackUnderflow},
		{"", apperr.UnbalancedProgram},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := rpn.Convert(tt.expr, nil)
			require.NoError(t, err)
			_, err = New(res.Variables, res.Program)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
		})
	}
}

func TestColumn(t *testing.T) {
	col, err := build(t, "A NAND B", nil).Column(Binary, MaxListedVariables)
	require.NoError(t, err)
	assert.Equal(t, "0111", col)

	_, err = build(t, "A AND B AND C", nil).Column(Binary, 2)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Validation))
}

func TestWriteJSON(t *testing.T) {
	d, err := build(t, "!A = B", nil).Document("!A = B", Letters, MaxListedVariables)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, d.WriteJSON(&buf))
	assert.NotContains(t, buf.String(), "classification")

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "!A = B", doc.Expression)
	assert.Equal(t, []string{"A", "B"}, doc.Variables)
	assert.Equal(t, "A NOT B EQU", doc.Postfix)
	require.Len(t, doc.Rows, 4)
	assert.Equal(t, RowDocument{Bits: "TT", Value: "F"}, doc.Rows[0])
	assert.Equal(t, RowDocument{Bits: "TF", Value: "T"}, doc.Rows[1])
	assert.Equal(t, RowDocument{Bits: "FT", Value: "T"}, doc.Rows[2])
	assert.Equal(t, RowDocument{Bits: "FF", Value: "F"}, doc.Rows[3])
}

func TestParseGlyphs(t *testing.T) {
	g, err := ParseGlyphs("ft")
	require.NoError(t, err)
	assert.Equal(t, Letters, g)

	g, err = ParseGlyphs("")
	require.NoError(t, err)
	assert.Equal(t, Binary, g)

	_, err = ParseGlyphs("yn")
	assert.Error(t, err)

	v, ok := Letters.Value('T')
	assert.True(t, ok)
	assert.True(t, v)
	_, ok = Letters.Value('1')
	assert.False(t, ok)
	assert.Equal(t, "FT", Letters.String())
}
