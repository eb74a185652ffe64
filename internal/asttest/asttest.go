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

// Package asttest contains helpers for building and comparing syntax trees
// in tests.
package asttest

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bufbuild/exprcompile/ast"
)

// IgnoreSpans is a [cmp.Option] that ignores the Source field of every node.
var IgnoreSpans = cmp.FilterPath(func(p cmp.Path) bool {
	field, ok := p.Last().(cmp.StructField)
	return ok && field.Name() == "Source"
}, cmp.Ignore())

// Diff returns a human-readable diff between two trees, ignoring spans and
// the difference between nil and empty lists. It returns the empty string if
// they are equal.
func Diff(want, got ast.Node) string {
	return cmp.Diff(want, got, IgnoreSpans, cmpopts.EquateEmpty())
}

// Prog returns a program with one expression statement per expression.
func Prog(exprs ...ast.Expr) *ast.Program {
	prog := &ast.Program{Statements: []*ast.ExpressionStatement{}}
	for _, expr := range exprs {
		prog.Statements = append(prog.Statements, &ast.ExpressionStatement{Expr: expr})
	}
	return prog
}

func Int(value string) *ast.Number   { return &ast.Number{Value: value} }
func Float(value string) *ast.Number { return &ast.Number{Value: value, IsFloat: true} }
func Str(value string) *ast.String   { return &ast.String{Value: value} }
func Bool(value bool) *ast.Boolean   { return &ast.Boolean{Value: value} }
func Ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func Bin(left ast.Expr, op string, right ast.Expr) *ast.BinaryOp {
	return &ast.BinaryOp{Left: left, Operator: op, Right: right}
}

func Un(op string, operand ast.Expr) *ast.UnaryOp {
	return &ast.UnaryOp{Operator: op, Operand: operand}
}

func Assign(left, right ast.Expr) *ast.Assignment {
	return &ast.Assignment{Left: left, Right: right}
}

func Paren(expr ast.Expr) *ast.Parenthesized {
	return &ast.Parenthesized{Expr: expr}
}

// Call returns a function call. A call with no arguments has an empty,
// non-nil argument list, as the parser produces.
func Call(name string, args ...ast.Expr) *ast.FunctionCall {
	if args == nil {
		args = []ast.Expr{}
	}
	return &ast.FunctionCall{Name: name, Arguments: args}
}
