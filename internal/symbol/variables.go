package symbol

import "github.com/DjordjeVuckovic/ttgen/internal/apperr"

// MaxVariables bounds the variables of one expression; ids must fit in a 64-bit assignment.
const MaxVariables = 64

// Variables maps variable names to ids in first-seen order. Names are case-sensitive.
type Variables struct {
	names []string
	ids   map[string]int
}

func NewVariables() *Variables {
	return &Variables{ids: make(map[string]int)}
}

// ID returns the id of name, registering it when unseen.
func (v *Variables) ID(name string) (int, error) {
	if id, ok := v.ids[name]; ok {
		return id, nil
	}
	if len(v.names) >= MaxVariables {
		return 0, apperr.Newf(apperr.TooManyVariables, "maximum of %d variables", MaxVariables)
	}
	id := len(v.names)
	v.names = append(v.names, name)
	v.ids[name] = id
	return id, nil
}

func (v *Variables) Len() int {
	return len(v.names)
}

// Names returns the names in registration order.
func (v *Variables) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}
