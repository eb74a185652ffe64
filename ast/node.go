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

import "github.com/bufbuild/exprcompile/token"

// Node is a node in the syntax tree.
type Node interface {
	// Kind returns which type of node this is.
	Kind() Kind
	// Label returns the node's kind name and, for nodes that carry one,
	// its literal value or operator on a second line.
	Label() string
	// Span returns the source range this node was parsed from.
	Span() Span

	isNode()
}

// Expr is a node that can appear as an expression.
type Expr interface {
	Node
	isExpr()
}

// Span is a half-open range of source text: End is the position just past
// the last character.
type Span struct {
	Start token.Position `json:"start"`
	End   token.Position `json:"end"`
}

// IsValid returns whether this span came from a parse.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Contains returns whether the byte offset lies within the span.
func (s Span) Contains(offset int) bool {
	return s.Start.Offset <= offset && offset < s.End.Offset
}

// Join returns the smallest span covering both s and t.
func Join(s, t Span) Span {
	if !s.IsValid() {
		return t
	}
	if !t.IsValid() {
		return s
	}
	out := s
	if t.Start.Less(out.Start) {
		out.Start = t.Start
	}
	if out.End.Less(t.End) {
		out.End = t.End
	}
	return out
}

// Program is the root of a syntax tree.
type Program struct {
	Statements []*ExpressionStatement
	Source     Span
}

// ExpressionStatement is an expression used as a statement, optionally
// terminated by a semicolon. The semicolon is included in Source.
type ExpressionStatement struct {
	Expr   Expr
	Source Span
}

// Assignment is Left = Right.
//
// Left can be any expression; whether it is assignable is not checked here.
type Assignment struct {
	Left, Right Expr
	Source      Span
}

// BinaryOp is an infix operator applied to two operands.
type BinaryOp struct {
	Left     Expr
	Operator string
	Right    Expr
	Source   Span
}

// UnaryOp is a prefix operator applied to one operand.
type UnaryOp struct {
	Operator string
	Operand  Expr
	Source   Span
}

// FunctionCall is a call of a named function. Arguments may be empty.
type FunctionCall struct {
	Name      string
	Arguments []Expr
	Source    Span
}

// Parenthesized is an expression in parentheses. It is kept as its own node
// so that the grouping in the source remains visible.
type Parenthesized struct {
	Expr   Expr
	Source Span
}

// Number is a numeric literal. Value is the literal exactly as written.
type Number struct {
	Value   string
	IsFloat bool
	Source  Span
}

// String is a string literal. Value has escapes resolved.
type String struct {
	Value  string
	Source Span
}

// Boolean is the literal true or false.
type Boolean struct {
	Value  bool
	Source Span
}

// Identifier is a bare name.
type Identifier struct {
	Name   string
	Source Span
}

func (*Program) Kind() Kind             { return KindProgram }
func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }
func (*Assignment) Kind() Kind          { return KindAssignment }
func (*BinaryOp) Kind() Kind            { return KindBinaryOp }
func (*UnaryOp) Kind() Kind             { return KindUnaryOp }
func (*FunctionCall) Kind() Kind        { return KindFunctionCall }
func (*Parenthesized) Kind() Kind       { return KindParenthesized }
func (*Number) Kind() Kind              { return KindNumber }
func (*String) Kind() Kind              { return KindString }
func (*Boolean) Kind() Kind             { return KindBoolean }
func (*Identifier) Kind() Kind          { return KindIdentifier }

func (n *Program) Span() Span             { return n.Source }
func (n *ExpressionStatement) Span() Span { return n.Source }
func (n *Assignment) Span() Span          { return n.Source }
func (n *BinaryOp) Span() Span            { return n.Source }
func (n *UnaryOp) Span() Span             { return n.Source }
func (n *FunctionCall) Span() Span        { return n.Source }
func (n *Parenthesized) Span() Span       { return n.Source }
func (n *Number) Span() Span              { return n.Source }
func (n *String) Span() Span              { return n.Source }
func (n *Boolean) Span() Span             { return n.Source }
func (n *Identifier) Span() Span          { return n.Source }

func (*Program) isNode()             {}
func (*ExpressionStatement) isNode() {}
func (*Assignment) isNode()          {}
func (*BinaryOp) isNode()            {}
func (*UnaryOp) isNode()             {}
func (*FunctionCall) isNode()        {}
func (*Parenthesized) isNode()       {}
func (*Number) isNode()              {}
func (*String) isNode()              {}
func (*Boolean) isNode()             {}
func (*Identifier) isNode()          {}

func (*Assignment) isExpr()    {}
func (*BinaryOp) isExpr()      {}
func (*UnaryOp) isExpr()       {}
func (*FunctionCall) isExpr()  {}
func (*Parenthesized) isExpr() {}
func (*Number) isExpr()        {}
func (*String) isExpr()        {}
func (*Boolean) isExpr()       {}
func (*Identifier) isExpr()    {}

var (
	_ Node = (*Program)(nil)
	_ Node = (*ExpressionStatement)(nil)
	_ Expr = (*Assignment)(nil)
	_ Expr = (*BinaryOp)(nil)
	_ Expr = (*UnaryOp)(nil)
	_ Expr = (*FunctionCall)(nil)
	_ Expr = (*Parenthesized)(nil)
	_ Expr = (*Number)(nil)
	_ Expr = (*String)(nil)
	_ Expr = (*Boolean)(nil)
	_ Expr = (*Identifier)(nil)
)
