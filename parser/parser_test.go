// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/internal/asttest"
	"github.com/bufbuild/exprcompile/internal/corpora"
	"github.com/bufbuild/exprcompile/parser"
	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/scanner"
	"github.com/bufbuild/exprcompile/token"
)

func pos(line, col, offset int) token.Position {
	return token.Position{Line: line, Column: col, Offset: offset}
}

func TestParse(t *testing.T) {
	t.Parallel()

	x, y := asttest.Ident("x"), asttest.Ident("y")
	tests := []struct {
		name string
		text string
		want *ast.Program
	}{
		{
			name: "assignment of arithmetic",
			text: "x = 5 + 3 * 2",
			want: asttest.Prog(asttest.Assign(x,
				asttest.Bin(asttest.Int("5"), "+", asttest.Bin(asttest.Int("3"), "*", asttest.Int("2"))))),
		},
		{
			name: "call",
			text: "func(x, y + 1)",
			want: asttest.Prog(asttest.Call("func", x, asttest.Bin(y, "+", asttest.Int("1")))),
		},
		{
			name: "argument commas are optional",
			text: "f(x y)",
			want: asttest.Prog(asttest.Call("f", x, y)),
		},
		{
			name: "product binds tighter",
			text: "1 + 2 * 3",
			want: asttest.Prog(asttest.Bin(asttest.Int("1"), "+",
				asttest.Bin(asttest.Int("2"), "*", asttest.Int("3")))),
		},
		{
			name: "assignment is right associative",
			text: "a = b = c",
			want: asttest.Prog(asttest.Assign(asttest.Ident("a"),
				asttest.Assign(asttest.Ident("b"), asttest.Ident("c")))),
		},
		{
			name: "any target may be assigned",
			text: "1 = 2",
			want: asttest.Prog(asttest.Assign(asttest.Int("1"), asttest.Int("2"))),
		},
		{
			name: "binary is left associative",
			text: "1 - 2 - 3",
			want: asttest.Prog(asttest.Bin(asttest.Bin(asttest.Int("1"), "-", asttest.Int("2")), "-", asttest.Int("3"))),
		},
		{
			name: "logic levels",
			text: "a || b && c",
			want: asttest.Prog(asttest.Bin(asttest.Ident("a"), "||",
				asttest.Bin(asttest.Ident("b"), "&&", asttest.Ident("c")))),
		},
		{
			name: "comparison levels",
			text: "a == b < c",
			want: asttest.Prog(asttest.Bin(asttest.Ident("a"), "==",
				asttest.Bin(asttest.Ident("b"), "<", asttest.Ident("c")))),
		},
		{
			name: "unary binds tightest",
			text: "-x * !y",
			want: asttest.Prog(asttest.Bin(asttest.Un("-", x), "*", asttest.Un("!", y))),
		},
		{
			name: "nested unary",
			text: "- -x",
			want: asttest.Prog(asttest.Un("-", asttest.Un("-", x))),
		},
		{
			name: "parentheses are kept",
			text: "(1 + 2) * 3",
			want: asttest.Prog(asttest.Bin(
				asttest.Paren(asttest.Bin(asttest.Int("1"), "+", asttest.Int("2"))), "*", asttest.Int("3"))),
		},
		{
			name: "literals",
			text: `s = "hi"; t = true; f = 1.5e3`,
			want: asttest.Prog(
				asttest.Assign(asttest.Ident("s"), asttest.Str("hi")),
				asttest.Assign(asttest.Ident("t"), asttest.Bool(true)),
				asttest.Assign(asttest.Ident("f"), asttest.Float("1.5e3")),
			),
		},
		{
			name: "empty call",
			text: "f()",
			want: asttest.Prog(asttest.Call("f")),
		},
		{
			name: "nested calls",
			text: "f(g(x), h())",
			want: asttest.Prog(asttest.Call("f", asttest.Call("g", x), asttest.Call("h"))),
		},
		{
			name: "commas between arguments are optional",
			text: "f(x y)",
			want: asttest.Prog(asttest.Call("f", x, y)),
		},
		{
			name: "trailing comma",
			text: "f(x,)",
			want: asttest.Prog(asttest.Call("f", x)),
		},
		{
			name: "semicolons are optional",
			text: "x; y z;",
			want: asttest.Prog(x, y, asttest.Ident("z")),
		},
		{
			name: "empty",
			text: "",
			want: asttest.Prog(),
		},
		{
			name: "only whitespace",
			text: " \n\t",
			want: asttest.Prog(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := parser.Parse(test.text)
			require.NoError(t, err)
			assert.Empty(t, asttest.Diff(test.want, got))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		sentinel error
		want     error
	}{
		{
			name:     "missing operand",
			text:     "1 +",
			sentinel: parser.ErrUnexpectedEndOfInput,
			want:     &parser.UnexpectedEndOfInputError{Pos: pos(1, 4, 3)},
		},
		{
			name:     "unclosed parenthesis",
			text:     "(1",
			sentinel: parser.ErrUnexpectedToken,
			want: &parser.UnexpectedTokenError{
				Expected: "closing parenthesis",
				Found:    token.Token{Pos: pos(1, 3, 2)},
			},
		},
		{
			name:     "unclosed call",
			text:     "f(1",
			sentinel: parser.ErrUnexpectedToken,
			want: &parser.UnexpectedTokenError{
				Expected: "closing parenthesis",
				Found:    token.Token{Pos: pos(1, 4, 3)},
			},
		},
		{
			name:     "operator in operand position",
			text:     "* 2",
			sentinel: parser.ErrUnexpectedToken,
			want: &parser.UnexpectedTokenError{
				Expected: "expression",
				Found:    token.NewOperator("*").At(pos(1, 1, 0)),
			},
		},
		{
			name:     "increment is not an expression",
			text:     "--x",
			sentinel: parser.ErrUnexpectedToken,
			want: &parser.UnexpectedTokenError{
				Expected: "expression",
				Found:    token.NewOperator("--").At(pos(1, 1, 0)),
			},
		},
		{
			name:     "empty parentheses",
			text:     "()",
			sentinel: parser.ErrUnexpectedToken,
			want: &parser.UnexpectedTokenError{
				Expected: "expression",
				Found:    token.NewPunct(')', token.Close, 0).At(pos(1, 2, 1)),
			},
		},
		{
			name:     "stray semicolon",
			text:     ";",
			sentinel: parser.ErrUnexpectedToken,
			want: &parser.UnexpectedTokenError{
				Expected: "expression",
				Found:    token.NewPunct(';', token.Separator, 0).At(pos(1, 1, 0)),
			},
		},
		{
			name:     "comma between statements",
			text:     "a, b",
			sentinel: parser.ErrUnexpectedToken,
			want: &parser.UnexpectedTokenError{
				Expected: "expression",
				Found:    token.NewPunct(',', token.Separator, 0).At(pos(1, 2, 1)),
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			prog, err := parser.Parse(test.text)
			assert.Nil(t, prog)
			require.ErrorIs(t, err, test.sentinel)
			assert.Equal(t, test.want, err)
		})
	}
}

func TestParseLexerFailures(t *testing.T) {
	t.Parallel()

	t.Run("mismatched bracket", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse("f(a])")
		require.ErrorIs(t, err, parser.ErrLexerFailure)
		require.ErrorIs(t, err, scanner.ErrMismatchedBrackets)

		var mismatch *scanner.MismatchedBracketsError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ']', mismatch.Closer)
		assert.Equal(t, '[', mismatch.Opener)

		at, ok := reporter.PositionOf(err)
		require.True(t, ok)
		assert.Equal(t, pos(1, 4, 3), at)
	})

	t.Run("unknown symbol after a token", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse("1 @ 2")
		var unknown *scanner.UnknownSymbolError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, '@', unknown.Symbol)
		assert.Equal(t, pos(1, 3, 2), unknown.Pos)
	})

	t.Run("first token", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(`"open`)
		require.ErrorIs(t, err, parser.ErrLexerFailure)
		require.ErrorIs(t, err, scanner.ErrUnterminatedLiteral)
	})

	t.Run("bad number", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse("x = 1e+")
		var bad *scanner.InvalidNumericLiteralError
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, "1e+", bad.Raw)
	})
}

func TestSpans(t *testing.T) {
	t.Parallel()

	prog, err := parser.Parse("x = 5 + 3 * 2;\n-f(a)")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	span := func(start, end token.Position) ast.Span { return ast.Span{Start: start, End: end} }

	first := prog.Statements[0]
	assert.Equal(t, span(pos(1, 1, 0), pos(1, 15, 14)), first.Span())

	assign := first.Expr.(*ast.Assignment)
	assert.Equal(t, span(pos(1, 1, 0), pos(1, 14, 13)), assign.Span())
	assert.Equal(t, span(pos(1, 1, 0), pos(1, 2, 1)), assign.Left.Span())

	sum := assign.Right.(*ast.BinaryOp)
	assert.Equal(t, span(pos(1, 5, 4), pos(1, 14, 13)), sum.Span())
	assert.Equal(t, span(pos(1, 9, 8), pos(1, 14, 13)), sum.Right.Span())

	second := prog.Statements[1]
	neg := second.Expr.(*ast.UnaryOp)
	assert.Equal(t, span(pos(2, 1, 15), pos(2, 6, 20)), neg.Span())
	assert.Equal(t, span(pos(2, 2, 16), pos(2, 6, 20)), neg.Operand.Span())
	assert.Equal(t, neg.Span(), second.Span())

	assert.Equal(t, span(pos(1, 1, 0), pos(2, 6, 20)), prog.Span())
}

func TestEmptyProgramSpan(t *testing.T) {
	t.Parallel()

	prog, err := parser.Parse("  ")
	require.NoError(t, err)
	assert.Equal(t, ast.Span{Start: pos(1, 3, 2), End: pos(1, 3, 2)}, prog.Span())
}

func TestParseOnce(t *testing.T) {
	t.Parallel()

	p := parser.New("x")
	_, err := p.Parse()
	require.NoError(t, err)
	_, err = p.Parse()
	require.ErrorIs(t, err, parser.ErrParsed)
}

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "EXPRCOMPILE_REFRESH",
		Extension: "expr",
		Outputs: []corpora.Output{
			{Extension: "ast"},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			prog, err := parser.Parse(text)
			if err != nil {
				at, _ := reporter.PositionOf(err)
				return []string{"", fmt.Sprintf("%v: %v\n", at, err)}
			}
			return []string{ast.Sprint(prog), ""}
		},
	}.Run(t)
}

func ExampleParse() {
	prog, err := parser.Parse("y = max(a, b) * -2")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(ast.Sprint(prog))

	_, err = parser.Parse("(1")
	fmt.Println(errors.Is(err, parser.ErrUnexpectedToken))
	// Output:
	// Program
	//   stmt0: ExpressionStatement
	//     expr: Assignment =
	//       left: Identifier y
	//       right: BinaryOp *
	//         left: FunctionCall max
	//           arg0: Identifier a
	//           arg1: Identifier b
	//         right: UnaryOp -
	//           operand: Number 2 (int)
	// true
}
