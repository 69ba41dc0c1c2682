package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/internal/config"
	"monkey/internal/parser"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "monkey.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("color = \"never\"\n"), 0o644))
	t.Setenv(config.EnvVar, cfgPath)

	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.monkey")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestTokensCommand(t *testing.T) {
	stdout, _, err := run(t, "", "tokens", writeSource(t, "let x = 5;\n@"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "LET")
	assert.Contains(t, lines[0], `"let"`)
	assert.Contains(t, lines[0], "1:1")
	assert.Contains(t, lines[5], "ILLEGAL")
	assert.Contains(t, lines[5], "2:1")
	assert.Contains(t, lines[6], "EOF")
}

func TestParseCommandText(t *testing.T) {
	stdout, stderr, err := run(t, "let x = 1 + 2 * 3;\nx", "parse", "-")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "let x = (1 + (2 * 3));\nx\n", stdout)
}

func TestParseCommandDump(t *testing.T) {
	stdout, _, err := run(t, "let x = 1;", "parse", "--format", "dump", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Program{")
	assert.Contains(t, stdout, "LetStmt{")
}

func TestParseCommandUnknownFormat(t *testing.T) {
	_, _, err := run(t, "x", "parse", "--format", "xml", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestParseCommandReportsErrors(t *testing.T) {
	stdout, stderr, err := run(t, "let x 5;\nlet y = 2;", "parse", "-")
	require.ErrorIs(t, err, errReported)

	assert.Equal(t, "let y = 2;\n", stdout)
	assert.Contains(t, stderr, "error[E0102]")
	assert.Contains(t, stderr, "<stdin>:1:7")
	assert.Contains(t, stderr, "could not parse <stdin> due to 1 previous error")
}

func TestCheckCommand(t *testing.T) {
	stdout, stderr, err := run(t, "", "check", "--reference", "../../../examples/fibonacci.monkey")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Successfully checked ../../../examples/fibonacci.monkey")
}

func TestCheckCommandErrors(t *testing.T) {
	_, stderr, err := run(t, "fn(x y) { }", "check", "-")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error[E0108]")
}

func TestMissingFile(t *testing.T) {
	_, _, err := run(t, "", "check", "does-not-exist.monkey")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monkey.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, _, err := run(t, "x", "--config", path, "parse", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestConfigMaxDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monkey.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: never\nmax_depth: 2\n"), 0o644))

	_, stderr, err := run(t, "((((1))));", "--config", path, "check", "-")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error[E0112]")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "monkey "+Version+"\n", stdout)
}

func TestCompareWithReference(t *testing.T) {
	program, errs := parser.ParseSource("1 + 2")
	require.Empty(t, errs)

	_, ok := compareWithReference("same", "1 + 2", program)
	assert.True(t, ok)

	mismatch, ok := compareWithReference("differs", "1 * 2", program)
	require.False(t, ok)
	assert.Equal(t, "E0900", mismatch.Code)
	assert.Contains(t, mismatch.Notes[0], `in "1 * 2": parser read (1 + 2), reference read (1 * 2)`)

	mismatch, ok = compareWithReference("count", "1 + 2\n3", program)
	require.False(t, ok)
	assert.Contains(t, mismatch.Notes[0], "parser read 1 statements, reference read 2")

	mismatch, ok = compareWithReference("rejected", "let x 5;", program)
	require.False(t, ok)
	assert.Equal(t, 1, mismatch.Position.Line)
	assert.Contains(t, mismatch.Notes[0], "rejected the program")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ns", formatDuration(500))
	assert.Equal(t, "1.5ms", formatDuration(1500000))
}

func TestExplainCommand(t *testing.T) {
	stdout, _, err := run(t, "", "explain", "e0102")
	require.NoError(t, err)
	assert.Equal(t, "E0102 (Syntax): A let binding needs '=' between the name and the value\n", stdout)

	stdout, _, err = run(t, "", "explain", "E0900")
	require.NoError(t, err)
	assert.Contains(t, stdout, "E0900 (Tooling)")

	_, _, err = run(t, "", "explain", "E0150")
	require.Error(t, err)

	_, _, err = run(t, "", "explain", "E4242")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown diagnostic code")
}
