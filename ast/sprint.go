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
	"strings"
)

// Sprint renders a tree as indented text, one node per line, prefixed with
// the edge that leads to it:
//
//	Program
//	  stmt0: ExpressionStatement
//	    expr: BinaryOp +
//	      left: Number 1 (int)
//	      right: Identifier x
//
// Labels are printed on one line.
func Sprint(n Node) string {
	var out strings.Builder
	sprint(&out, "", n, 0)
	return out.String()
}

func sprint(out *strings.Builder, edge string, n Node, depth int) {
	out.WriteString(strings.Repeat("  ", depth))
	if edge != "" {
		out.WriteString(edge)
		out.WriteString(": ")
	}
	out.WriteString(strings.ReplaceAll(n.Label(), "\n", " "))
	out.WriteByte('\n')
	for _, child := range Children(n) {
		sprint(out, child.Name, child.Node, depth+1)
	}
}
