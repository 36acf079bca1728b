package table

import (
	"fmt"
	"strings"
)

// Glyphs renders false and true as single characters.
type Glyphs struct {
	False byte
	True  byte
}

var (
	Binary  = Glyphs{False: '0', True: '1'}
	Letters = Glyphs{False: 'F', True: 'T'}
)

const DefaultGlyphs = "01"

// ParseGlyphs accepts "01" or "FT" (case-insensitive).
func ParseGlyphs(s string) (Glyphs, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "01":
		return Binary, nil
	case "FT":
		return Letters, nil
	default:
		return Glyphs{}, fmt.Errorf("invalid glyphs %q (must be '01' or 'FT')", s)
	}
}

func (g Glyphs) Of(v bool) byte {
	if v {
		return g.True
	}
	return g.False
}

// Value parses a single glyph back into a boolean.
func (g Glyphs) Value(c byte) (bool, bool) {
	switch c {
	case g.True:
		return true, true
	case g.False:
		return false, true
	default:
		return false, false
	}
}

func (g Glyphs) String() string {
	return string([]byte{g.False, g.True})
}
