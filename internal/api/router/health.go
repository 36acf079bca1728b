package router

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/ttgen/internal/sat"
)

// SelfTest compiles and classifies a known tautology.
func SelfTest(_ context.Context) error {
	tbl, err := compile("A OR !A", nil)
	if err != nil {
		return err
	}
	cl, err := sat.Classify(tbl.Program, len(tbl.Variables))
	if err != nil {
		return err
	}
	if cl.Class != sat.Tautology {
		return fmt.Errorf("self test: got %s, want tautology", cl.Class)
	}
	return nil
}
