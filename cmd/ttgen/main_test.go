package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("TTGEN_GLYPHS", "")
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_InputFile(t *testing.T) {
	path := writeFile(t, "in.txt", "A AND B\n(A\n")

	code, out, errOut := runCLI(t, "-input", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "A B\n1 1  1\n1 0  0\n0 1  0\n0 0  0\n\n", out)
	assert.Equal(t, "error: mismatched parentheses\n", errOut)
}

func TestRun_Flags(t *testing.T) {
	path := writeFile(t, "in.txt", "A OR !A\n")

	code, out, _ := runCLI(t, "-input", path, "-glyphs", "FT", "-classify")
	assert.Equal(t, 0, code)
	assert.Equal(t, "A\nT  T\nF  T\n= tautology\n\n", out)
}

func TestRun_InvalidFlags(t *testing.T) {
	code, _, _ := runCLI(t, "-glyphs", "yn")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "-format", "xml")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "stray")
	assert.Equal(t, 2, code)
}

func TestRun_MissingInput(t *testing.T) {
	code, _, _ := runCLI(t, "-input", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, 1, code)
}

func TestRun_Suite(t *testing.T) {
	passing := writeFile(t, "ok.yaml", "name: ok\nchecks:\n  - id: and\n    expression: A AND B\n    expect: \"1000\"\n")
	code, out, _ := runCLI(t, "-suite", passing)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "1/1 checks passed")

	failing := writeFile(t, "bad.yaml", "name: bad\nchecks:\n  - id: or\n    expression: A OR B\n    expect: \"1000\"\n")
	code, out, _ = runCLI(t, "-suite", failing)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL")
}
