package table

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxListedVariables bounds tables that are materialized rather than streamed.
const MaxListedVariables = 20

type Document struct {
	Expression string        `json:"expression"`
	Variables  []string      `json:"variables"`
	Postfix    string        `json:"postfix"`
	Rows       []RowDocument `json:"rows"`
	// Classification is set by callers that classify the expression.
	Classification string `json:"classification,omitempty"`
}

type RowDocument struct {
	// Bits holds one glyph per variable in variable order.
	Bits  string `json:"bits"`
	Value string `json:"value"`
}

func (t *Table) Document(expression string, g Glyphs, maxVars int) (*Document, error) {
	rows, err := t.Collect(maxVars)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Expression: expression,
		Variables:  t.Variables,
		Postfix:    t.Program.Format(t.Variables),
		Rows:       make([]RowDocument, 0, len(rows)),
	}
	bits := make([]byte, len(t.Variables))
	for _, r := range rows {
		for id := range t.Variables {
			bits[id] = g.Of(r.Bit(id))
		}
		doc.Rows = append(doc.Rows, RowDocument{
			Bits:  string(bits),
			Value: string(g.Of(r.Value)),
		})
	}
	return doc, nil
}

// WriteJSON writes the document as a single line.
func (d *Document) WriteJSON(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}
	return nil
}
