package table

import (
	"bufio"
	"io"
	"strings"
)

// WriteText prints the header row of variable names and one line per assignment.
// Each bit is left-aligned in a column as wide as its variable name, and the result
// follows after an extra space:
//
//	A B
//	1 1  1
//	1 0  0
func (t *Table) WriteText(w io.Writer, g Glyphs) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(strings.Join(t.Variables, " "))
	bw.WriteByte('\n')

	pads := make([]string, len(t.Variables))
	for i, name := range t.Variables {
		pads[i] = strings.Repeat(" ", max(len(name)-1, 0))
	}

	err := t.Each(func(r Row) error {
		for id := range t.Variables {
			bw.WriteByte(g.Of(r.Bit(id)))
			bw.WriteString(pads[id])
			bw.WriteByte(' ')
		}
		bw.WriteByte(' ')
		bw.WriteByte(g.Of(r.Value))
		return bw.WriteByte('\n')
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
