package suite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/ttgen/internal/sat"
	"github.com/DjordjeVuckovic/ttgen/internal/table"
	"github.com/DjordjeVuckovic/ttgen/internal/ttgen"
)

type Report struct {
	RunID     uuid.UUID `json:"run_id"`
	Suite     string    `json:"suite"`
	Timestamp time.Time `json:"timestamp"`
	Results   []Result  `json:"results"`
}

type Result struct {
	ID             string        `json:"id"`
	Expression     string        `json:"expression"`
	Passed         bool          `json:"passed"`
	Column         string        `json:"column,omitempty"`
	Classification string        `json:"classification,omitempty"`
	Message        string        `json:"message,omitempty"`
	Duration       time.Duration `json:"duration"`
}

func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

func (r *Report) OK() bool {
	return r.Failed() == 0
}

// Run evaluates every check. A check that fails to parse is a failed check, not a
// run error; only cancellation stops the run early.
func Run(ctx context.Context, loaded *LoadedSuite) (*Report, error) {
	report := &Report{
		RunID:     uuid.New(),
		Suite:     loaded.Suite.Name,
		Timestamp: time.Now(),
		Results:   make([]Result, 0, len(loaded.Suite.Checks)),
	}

	for _, c := range loaded.Suite.Checks {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		start := time.Now()
		res := runCheck(c, loaded.Glyphs)
		res.Duration = time.Since(start)
		if !res.Passed {
			slog.Debug("Check failed", "run_id", report.RunID, "check", c.ID, "message", res.Message)
		}
		report.Results = append(report.Results, res)
	}

	slog.Info("Suite finished", "run_id", report.RunID, "suite", report.Suite,
		"checks", len(report.Results), "failed", report.Failed())
	return report, nil
}

func runCheck(c Check, g table.Glyphs) Result {
	res := Result{ID: c.ID, Expression: c.Expression}

	session := ttgen.NewSession()
	if len(c.Order) > 0 {
		if _, err := session.Process("/ " + strings.Join(c.Order, " ")); err != nil {
			res.Message = fmt.Sprintf("order: %v", err)
			return res
		}
	}
	tbl, err := session.Process(c.Expression)
	if err != nil {
		res.Message = err.Error()
		return res
	}
	if tbl == nil {
		res.Message = "expression must not be a declaration line"
		return res
	}

	var problems []string
	if c.Expect != "" {
		col, err := tbl.Column(g, table.MaxListedVariables)
		if err != nil {
			res.Message = err.Error()
			return res
		}
		res.Column = col
		if col != c.Expect {
			problems = append(problems, fmt.Sprintf("column %s, want %s", col, c.Expect))
		}
	}
	if c.Classify != nil {
		cl, err := sat.Classify(tbl.Program, len(tbl.Variables))
		if err != nil {
			res.Message = err.Error()
			return res
		}
		res.Classification = cl.Class.String()
		if cl.Class != *c.Classify {
			problems = append(problems, fmt.Sprintf("%s, want %s", cl.Class, *c.Classify))
		}
	}

	res.Passed = len(problems) == 0
	res.Message = strings.Join(problems, "; ")
	return res
}
