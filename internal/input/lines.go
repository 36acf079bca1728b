// Package input supplies expression lines one at a time.
package input

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
)

// MaxLineLength is the longest accepted line, excluding the line terminator.
const MaxLineLength = 1023

// Line is one input line. Err is set for lines that could not be accepted; the
// source stays usable after such a line.
type Line struct {
	Number int
	Text   string
	Err    error
}

type LineSource struct {
	r      *bufio.Reader
	number int
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReaderSize(r, MaxLineLength+1)}
}

// Next returns the next line, io.EOF when the input is exhausted, or a read error.
func (s *LineSource) Next() (Line, error) {
	var b strings.Builder
	tooLong := false

	for {
		chunk, isPrefix, err := s.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (b.Len() > 0 || tooLong) {
				break
			}
			return Line{}, err
		}
		if !tooLong {
			b.Write(chunk)
			if b.Len() > MaxLineLength {
				tooLong = true
			}
		}
		if !isPrefix {
			break
		}
	}

	s.number++
	line := Line{Number: s.number}
	if tooLong {
		line.Err = apperr.Newf(apperr.LineTooLong, "line exceeds %d characters", MaxLineLength)
		return line, nil
	}
	line.Text = b.String()
	return line, nil
}
