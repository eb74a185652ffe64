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

// Package dot renders syntax trees as Graphviz DOT graphs.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/bufbuild/exprcompile/ast"
)

var fillColors = map[ast.Kind]string{
	ast.KindNumber:              "lightgreen",
	ast.KindString:              "lightyellow",
	ast.KindBoolean:             "lightblue",
	ast.KindIdentifier:          "lightcyan",
	ast.KindBinaryOp:            "lightcoral",
	ast.KindUnaryOp:             "lightpink",
	ast.KindAssignment:          "orange",
	ast.KindFunctionCall:        "lightsteelblue",
	ast.KindParenthesized:       "lavender",
	ast.KindProgram:             "lightgray",
	ast.KindExpressionStatement: "wheat",
}

// Render returns the DOT graph of the tree rooted at n.
//
// Nodes are numbered in preorder. The edges out of a node are listed after
// all of its descendants.
func Render(n ast.Node) string {
	var out strings.Builder
	out.WriteString("digraph AST {\n")
	out.WriteString("  node [shape=rectangle, style=\"rounded,filled\", fillcolor=lightblue];\n")
	out.WriteString("  rankdir=TB;\n")
	out.WriteString("\n")

	var r renderer
	r.node(&out, n)

	out.WriteString("}\n")
	return out.String()
}

// Write writes the DOT graph of the tree rooted at n to w.
func Write(w io.Writer, n ast.Node) error {
	_, err := io.WriteString(w, Render(n))
	return err
}

type renderer struct {
	next int
}

// node writes n and its descendants, and returns n's ID.
func (r *renderer) node(out *strings.Builder, n ast.Node) int {
	id := r.next
	r.next++
	fmt.Fprintf(out, "  node_%d [label=\"%s\", fillcolor=\"%s\"];\n",
		id, ast.EscapeLabel(n.Label()), fillColors[n.Kind()])

	edges := ast.Children(n)
	ids := make([]int, len(edges))
	for i, edge := range edges {
		ids[i] = r.node(out, edge.Node)
	}
	for i, edge := range edges {
		fmt.Fprintf(out, "  node_%d -> node_%d [label=\"%s\"];\n", id, ids[i], edge.Name)
	}
	return id
}
