package ttgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
	"github.com/DjordjeVuckovic/ttgen/internal/input"
	"github.com/DjordjeVuckovic/ttgen/internal/sat"
	"github.com/DjordjeVuckovic/ttgen/internal/table"
)

type Format string

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", TextFormat:
		return TextFormat, nil
	case JSONFormat:
		return JSONFormat, nil
	default:
		return "", fmt.Errorf("invalid format %q (must be 'text' or 'json')", s)
	}
}

type Options struct {
	Glyphs   table.Glyphs
	Format   Format
	Classify bool
}

func DefaultOptions() Options {
	return Options{
		Glyphs: table.Binary,
		Format: TextFormat,
	}
}

// Stats summarizes one run.
type Stats struct {
	Lines  int
	Tables int
	Errors int
}

// Runner writes tables to out and one "error: ..." line per rejected line to errOut.
type Runner struct {
	opts   Options
	out    io.Writer
	errOut io.Writer
}

func NewRunner(opts Options, out, errOut io.Writer) *Runner {
	return &Runner{opts: opts, out: out, errOut: errOut}
}

// Run processes lines until src is exhausted or ctx is cancelled. Only read and
// write failures are returned; expression errors are reported and counted.
func (r *Runner) Run(ctx context.Context, src *input.LineSource) (Stats, error) {
	var stats Stats
	session := NewSession()

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, fmt.Errorf("read line %d: %w", stats.Lines+1, err)
		}
		stats.Lines++

		if line.Err == nil {
			var printed bool
			printed, line.Err = r.processLine(session, line.Text)
			if printed {
				stats.Tables++
			}
			if line.Err == nil {
				continue
			}
		} else {
			session.Discard()
		}

		var ae *apperr.Error
		if !errors.As(line.Err, &ae) {
			return stats, line.Err
		}
		stats.Errors++
		slog.Debug("Line rejected", "line", line.Number, "kind", ae.Kind.String(), "fault", ae.Kind.IsFault(), "error", ae)
		if _, err := fmt.Fprintf(r.errOut, "error: %v\n", line.Err); err != nil {
			return stats, fmt.Errorf("write error line: %w", err)
		}
	}
}

// processLine reports whether a table was written. Rejected lines come back as
// *apperr.Error, output failures as plain errors.
func (r *Runner) processLine(session *Session, text string) (bool, error) {
	tbl, err := session.Process(text)
	if err != nil {
		return false, err
	}
	if tbl == nil {
		if declared := session.Declared(); declared != nil {
			slog.Debug("Variable order declared", "variables", declared)
		}
		return false, nil
	}

	var cl *sat.Classification
	if r.opts.Classify {
		cl, err = sat.Classify(tbl.Program, len(tbl.Variables))
		if err != nil {
			return false, err
		}
	}

	if r.opts.Format == JSONFormat {
		doc, err := tbl.Document(text, r.opts.Glyphs, table.MaxListedVariables)
		if err != nil {
			return false, err
		}
		if cl != nil {
			doc.Classification = cl.Class.String()
		}
		if err := doc.WriteJSON(r.out); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := tbl.WriteText(r.out, r.opts.Glyphs); err != nil {
		return false, fmt.Errorf("write table: %w", err)
	}
	if cl != nil {
		if _, err := fmt.Fprintf(r.out, "= %s\n", cl.Class); err != nil {
			return false, fmt.Errorf("write classification: %w", err)
		}
	}
	if _, err := fmt.Fprintln(r.out); err != nil {
		return false, fmt.Errorf("write separator: %w", err)
	}
	return true, nil
}
