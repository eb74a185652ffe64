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
	"strconv"
	"strings"
)

func (*Program) Label() string             { return "Program" }
func (*ExpressionStatement) Label() string { return "ExpressionStatement" }
func (*Assignment) Label() string          { return "Assignment\n=" }
func (n *BinaryOp) Label() string          { return "BinaryOp\n" + n.Operator }
func (n *UnaryOp) Label() string           { return "UnaryOp\n" + n.Operator }
func (n *FunctionCall) Label() string      { return "FunctionCall\n" + n.Name }
func (*Parenthesized) Label() string       { return "Parenthesized\n( )" }
func (n *String) Label() string            { return "String\n\"" + n.Value + "\"" }
func (n *Boolean) Label() string           { return "Boolean\n" + strconv.FormatBool(n.Value) }
func (n *Identifier) Label() string        { return "Identifier\n" + n.Name }

func (n *Number) Label() string {
	if n.IsFloat {
		return "Number\n" + n.Value + " (float)"
	}
	return "Number\n" + n.Value + " (int)"
}

var labelEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

// EscapeLabel escapes backslashes, double quotes, newlines and tabs, so that
// a label can be placed inside a double-quoted string in a text format such
// as Graphviz DOT.
func EscapeLabel(label string) string {
	return labelEscaper.Replace(label)
}
