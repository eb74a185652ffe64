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

package ast

import (
	"fmt"
	"iter"
	"strconv"
)

// Edge is a link from a node to one of its children. Name describes the
// child's role: "left", "right", "operand", "expr", "argN" or "stmtN".
type Edge struct {
	Name string
	Node Node
}

// Children returns the children of n in source order.
func Children(n Node) []Edge {
	switch n := n.(type) {
	case *Program:
		edges := make([]Edge, len(n.Statements))
		for i, stmt := range n.Statements {
			edges[i] = Edge{"stmt" + strconv.Itoa(i), stmt}
		}
		return edges
	case *ExpressionStatement:
		return []Edge{{"expr", n.Expr}}
	case *Assignment:
		return []Edge{{"left", n.Left}, {"right", n.Right}}
	case *BinaryOp:
		return []Edge{{"left", n.Left}, {"right", n.Right}}
	case *UnaryOp:
		return []Edge{{"operand", n.Operand}}
	case *FunctionCall:
		edges := make([]Edge, len(n.Arguments))
		for i, arg := range n.Arguments {
			edges[i] = Edge{"arg" + strconv.Itoa(i), arg}
		}
		return edges
	case *Parenthesized:
		return []Edge{{"expr", n.Expr}}
	case *Number, *String, *Boolean, *Identifier:
		return nil
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// Walk visits n and its descendants in preorder. depth is zero for n. If
// visit returns false, the children of that node are skipped.
func Walk(n Node, visit func(n Node, depth int) bool) {
	walk(n, 0, visit)
}

func walk(n Node, depth int, visit func(Node, int) bool) {
	if !visit(n, depth) {
		return
	}
	for _, edge := range Children(n) {
		walk(edge.Node, depth+1, visit)
	}
}

// All returns an iterator over n and its descendants in preorder.
func All(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		stopped := false
		Walk(n, func(n Node, _ int) bool {
			if stopped {
				return false
			}
			stopped = !yield(n)
			return !stopped
		})
	}
}
