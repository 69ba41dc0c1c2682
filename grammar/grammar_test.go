package grammar_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monkey/grammar"
	"monkey/internal/ast"
	"monkey/internal/parser"
)

// Both parsers must agree on every well-formed program.
func assertSameTree(t *testing.T, source string) *ast.Program {
	t.Helper()

	want, errs := parser.ParseSource(source)
	require.Empty(t, errs, "pratt parser rejected %q", source)

	got, err := grammar.Parse("test.monkey", source)
	require.NoError(t, err, "reference grammar rejected %q", source)

	assert.Equal(t, want.String(), got.String(), "source: %s", source)
	return got
}

func TestMatchesPrattParser(t *testing.T) {
	inputs := []string{
		"let x = 5;",
		"let y = true; let z = false;",
		"return x;",
		"x",
		"a; b",
		"-a * b",
		"!-a",
		"a + b + c",
		"a + b - c",
		"a * b / c",
		"a + b / c",
		"a + b * c + d / e - f",
		"3 + 4; -5 * 5",
		"5 > 4 == 3 < 4",
		"5 < 4 != 3 > 4",
		"3 + 4 * 5 == 3 * 1 + 4 * 5",
		"3 > 5 == false",
		"1 + (2 + 3) + 4",
		"(5 + 5) * 2",
		"-(5 + 5)",
		"!(true == true)",
		"a + add(b * c) + d",
		"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))",
		"add(a + b + c * d / f + g)",
		"-f(x)",
		"f(1)(2)",
		"f()",
		"if (x < y) { x }",
		"if (x < y) { x } else { y; }",
		"if (x) { }",
		"fn() { }",
		"fn(x, y) { x + y; }",
		"fn(x) { fn(y) { x + y } }(1)(2)",
		"let letter = iffy + fnord + returned;",
	}

	for _, input := range inputs {
		assertSameTree(t, input)
	}
}

func TestExampleFiles(t *testing.T) {
	for _, path := range []string{"../examples/fibonacci.monkey", "../examples/closures.monkey"} {
		source, err := os.ReadFile(path)
		require.NoError(t, err)

		assertSameTree(t, string(source))

		program, err := grammar.ParseFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, program.Statements)
	}
}

func TestFibonacciShape(t *testing.T) {
	program, err := grammar.ParseFile("../examples/fibonacci.monkey")
	require.NoError(t, err)
	require.Len(t, program.Statements, 3)

	let, ok := program.Statements[0].(*ast.LetStmt)
	require.True(t, ok)
	assert.Equal(t, "fibonacci", let.Name.Name)

	fn, ok := let.Value.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "n", fn.Params[0].Name)

	ifExpr, ok := fn.Body.Statements[0].(*ast.ExprStmt).Expr.(*ast.IfExpr)
	require.True(t, ok)
	assert.Equal(t, "(n < 2)", ifExpr.Condition.String())
	assert.NotNil(t, ifExpr.Alternative)
}

func TestPositions(t *testing.T) {
	program, err := grammar.Parse("pos.monkey", "let x = 5;\n  add(x)")
	require.NoError(t, err)
	require.Len(t, program.Statements, 2)

	let := program.Statements[0].(*ast.LetStmt)
	assert.Equal(t, 1, let.Pos.Line)
	assert.Equal(t, 1, let.Pos.Column)
	assert.Equal(t, 4, let.Name.Pos.Offset)

	stmt := program.Statements[1].(*ast.ExprStmt)
	assert.Equal(t, 2, stmt.Pos.Line)
	assert.Equal(t, 3, stmt.Pos.Column)
	assert.Equal(t, 13, stmt.Pos.Offset)
}

func TestSyntaxErrors(t *testing.T) {
	inputs := []string{
		"let x 5;",
		"let = 5;",
		"let x = 5",
		"(1 + 2",
		"if x { }",
		"fn(x y) { }",
		"add(1, 2",
		"let if = 1;",
		"}",
	}

	for _, input := range inputs {
		_, err := grammar.Parse("bad.monkey", input)
		require.Error(t, err, "input: %s", input)

		pos, ok := grammar.ErrorPosition(err)
		assert.True(t, ok, "input: %s", input)
		assert.Equal(t, 1, pos.Line, "input: %s", input)
	}
}

func TestIntegerOverflow(t *testing.T) {
	_, err := grammar.Parse("big.monkey", "99999999999999999999;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit in 64 bits")

	_, ok := grammar.ErrorPosition(err)
	assert.False(t, ok)
}

func TestMissingFile(t *testing.T) {
	_, err := grammar.ParseFile("../examples/does-not-exist.monkey")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestEBNF(t *testing.T) {
	ebnf := grammar.EBNF()
	assert.Contains(t, ebnf, "Program")
	assert.Contains(t, ebnf, `"let"`)
}
