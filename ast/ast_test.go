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

package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/internal/asttest"
	"github.com/bufbuild/exprcompile/parser"
	"github.com/bufbuild/exprcompile/token"
)

func TestLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		node ast.Node
		want string
	}{
		{asttest.Prog(), "Program"},
		{&ast.ExpressionStatement{Expr: asttest.Ident("x")}, "ExpressionStatement"},
		{asttest.Assign(asttest.Ident("x"), asttest.Int("1")), "Assignment\n="},
		{asttest.Bin(asttest.Int("1"), "<=", asttest.Int("2")), "BinaryOp\n<="},
		{asttest.Un("!", asttest.Bool(true)), "UnaryOp\n!"},
		{asttest.Call("max"), "FunctionCall\nmax"},
		{asttest.Paren(asttest.Ident("x")), "Parenthesized\n( )"},
		{asttest.Int("42"), "Number\n42 (int)"},
		{asttest.Float("4.2e1"), "Number\n4.2e1 (float)"},
		{asttest.Str(`say "hi"`), "String\n\"say \"hi\"\""},
		{asttest.Bool(false), "Boolean\nfalse"},
		{asttest.Ident("x_1"), "Identifier\nx_1"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.node.Label(), "%T", test.node)
	}
}

func TestEscapeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Number\n5 (int)`, ast.EscapeLabel(asttest.Int("5").Label()))
	assert.Equal(t, `String\n\"a\\b\"`, ast.EscapeLabel(asttest.Str(`a\b`).Label()))
	assert.Equal(t, `tab\there`, ast.EscapeLabel("tab\there"))
	assert.Equal(t, "plain", ast.EscapeLabel("plain"))
}

func TestKindNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Program", ast.KindProgram.String())
	assert.Equal(t, "FunctionCall", ast.KindFunctionCall.String())
	assert.Equal(t, "Identifier", ast.KindIdentifier.String())
	assert.Equal(t, ast.KindBinaryOp, asttest.Bin(asttest.Int("1"), "+", asttest.Int("2")).Kind())
}

func TestChildren(t *testing.T) {
	t.Parallel()

	call := asttest.Call("f", asttest.Ident("a"), asttest.Int("1"))
	edges := ast.Children(call)
	require.Len(t, edges, 2)
	assert.Equal(t, "arg0", edges[0].Name)
	assert.Equal(t, "arg1", edges[1].Name)
	assert.Same(t, call.Arguments[1], edges[1].Node)

	bin := asttest.Bin(asttest.Ident("a"), "-", asttest.Ident("b"))
	edges = ast.Children(bin)
	require.Len(t, edges, 2)
	assert.Equal(t, "left", edges[0].Name)
	assert.Equal(t, "right", edges[1].Name)

	assert.Empty(t, ast.Children(asttest.Ident("a")))
	assert.Empty(t, ast.Children(asttest.Call("f")))
}

func TestWalk(t *testing.T) {
	t.Parallel()

	prog, err := parser.Parse("x = f(1, -y); z")
	require.NoError(t, err)

	var kinds []ast.Kind
	var depths []int
	ast.Walk(prog, func(n ast.Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []ast.Kind{
		ast.KindProgram,
		ast.KindExpressionStatement,
		ast.KindAssignment,
		ast.KindIdentifier,
		ast.KindFunctionCall,
		ast.KindNumber,
		ast.KindUnaryOp,
		ast.KindIdentifier,
		ast.KindExpressionStatement,
		ast.KindIdentifier,
	}, kinds)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 4, 5, 1, 2}, depths)

	// Returning false skips the children of a node, but not its siblings.
	var visited int
	ast.Walk(prog, func(n ast.Node, _ int) bool {
		visited++
		return n.Kind() != ast.KindFunctionCall
	})
	assert.Equal(t, 7, visited)
}

func TestAll(t *testing.T) {
	t.Parallel()

	prog, err := parser.Parse("a + b * c")
	require.NoError(t, err)

	var names []string
	for n := range ast.All(prog) {
		if id, ok := n.(*ast.Identifier); ok {
			names = append(names, id.Name)
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	var first []ast.Kind
	for n := range ast.All(prog) {
		first = append(first, n.Kind())
		if len(first) == 3 {
			break
		}
	}
	assert.Equal(t, []ast.Kind{ast.KindProgram, ast.KindExpressionStatement, ast.KindBinaryOp}, first)
}

func TestSprint(t *testing.T) {
	t.Parallel()

	prog := asttest.Prog(
		asttest.Call("print", asttest.Str("a\nb"), asttest.Paren(asttest.Un("-", asttest.Float("1.5")))),
	)
	assert.Equal(t, `Program
  stmt0: ExpressionStatement
    expr: FunctionCall print
      arg0: String "a b"
      arg1: Parenthesized ( )
        expr: UnaryOp -
          operand: Number 1.5 (float)
`, ast.Sprint(prog))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	at := func(offset int) token.Position {
		return token.Position{Line: 1, Column: offset + 1, Offset: offset}
	}
	a := ast.Span{Start: at(2), End: at(4)}
	b := ast.Span{Start: at(6), End: at(9)}

	assert.Equal(t, ast.Span{Start: at(2), End: at(9)}, ast.Join(a, b))
	assert.Equal(t, ast.Span{Start: at(2), End: at(9)}, ast.Join(b, a))
	assert.Equal(t, a, ast.Join(ast.Span{}, a))
	assert.Equal(t, a, ast.Join(a, ast.Span{}))

	assert.Equal(t, 3, b.Len())
	assert.True(t, b.Contains(6))
	assert.True(t, b.Contains(8))
	assert.False(t, b.Contains(9))
	assert.False(t, ast.Span{}.IsValid())
}

func TestIndex(t *testing.T) {
	t.Parallel()

	//                            0123456789012345
	prog, err := parser.Parse("x = f(ab, 2);  y")
	require.NoError(t, err)
	idx := ast.NewIndex(prog)
	assert.Same(t, prog, idx.Root())

	id, ok := idx.At(7).(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "ab", id.Name)

	kinds := func(path []ast.Node) []ast.Kind {
		var out []ast.Kind
		for _, n := range path {
			out = append(out, n.Kind())
		}
		return out
	}
	assert.Equal(t, []ast.Kind{
		ast.KindProgram,
		ast.KindExpressionStatement,
		ast.KindAssignment,
		ast.KindFunctionCall,
		ast.KindIdentifier,
	}, kinds(idx.Path(6)))

	// Between the arguments only the call contains the offset.
	assert.Equal(t, ast.KindFunctionCall, idx.At(8).Kind())
	// The semicolon belongs to the statement.
	assert.Equal(t, ast.KindExpressionStatement, idx.At(12).Kind())
	// Whitespace between statements belongs only to the program.
	assert.Equal(t, ast.KindProgram, idx.At(13).Kind())
	assert.Equal(t, ast.KindIdentifier, idx.At(15).Kind())

	assert.Nil(t, idx.At(16))
	assert.Empty(t, idx.Path(100))
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	prog := asttest.Prog(
		asttest.Call("f", asttest.Float("1.5"), asttest.Un("-", asttest.Ident("x"))),
		asttest.Assign(asttest.Ident("s"), asttest.Str("")),
		asttest.Bool(false),
	)
	data, err := json.Marshal(prog)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "Program",
		"statements": [
			{"kind": "ExpressionStatement", "expr": {
				"kind": "FunctionCall", "name": "f", "arguments": [
					{"kind": "Number", "value": "1.5", "is_float": true},
					{"kind": "UnaryOp", "operator": "-", "operand": {"kind": "Identifier", "name": "x"}}
				]
			}},
			{"kind": "ExpressionStatement", "expr": {
				"kind": "Assignment",
				"left": {"kind": "Identifier", "name": "s"},
				"right": {"kind": "String", "value": ""}
			}},
			{"kind": "ExpressionStatement", "expr": {"kind": "Boolean", "value": false}}
		]
	}`, string(data))

	data, err = json.Marshal(asttest.Call("g"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind": "FunctionCall", "name": "g", "arguments": []}`, string(data))
}

func TestMarshalJSONSpans(t *testing.T) {
	t.Parallel()

	prog, err := parser.Parse("7")
	require.NoError(t, err)
	data, err := json.Marshal(prog.Statements[0].Expr)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "Number", "value": "7", "is_float": false,
		"span": {
			"start": {"line": 1, "column": 1, "offset": 0},
			"end": {"line": 1, "column": 2, "offset": 1}
		}
	}`, string(data))
}
