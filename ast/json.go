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
	"encoding/json"
	"fmt"
)

// jsonNode is the wire form of a node: a "kind" tag plus the fields that
// kind uses.
type jsonNode struct {
	Kind       string                  `json:"kind"`
	Name       string                  `json:"name,omitempty"`
	Operator   string                  `json:"operator,omitempty"`
	Value      any                     `json:"value,omitempty"`
	IsFloat    *bool                   `json:"is_float,omitempty"`
	Left       Node                    `json:"left,omitempty"`
	Right      Node                    `json:"right,omitempty"`
	Operand    Node                    `json:"operand,omitempty"`
	Expr       Node                    `json:"expr,omitempty"`
	Arguments  *[]Expr                 `json:"arguments,omitempty"`
	Statements *[]*ExpressionStatement `json:"statements,omitempty"`
	Span       *Span                   `json:"span,omitempty"`
}

func toJSON(n Node) (jsonNode, error) {
	out := jsonNode{Kind: n.Kind().String()}
	if span := n.Span(); span.IsValid() {
		out.Span = &span
	}

	switch n := n.(type) {
	case *Program:
		stmts := n.Statements
		if stmts == nil {
			stmts = []*ExpressionStatement{}
		}
		out.Statements = &stmts
	case *ExpressionStatement:
		out.Expr = n.Expr
	case *Assignment:
		out.Left, out.Right = n.Left, n.Right
	case *BinaryOp:
		out.Left, out.Operator, out.Right = n.Left, n.Operator, n.Right
	case *UnaryOp:
		out.Operator, out.Operand = n.Operator, n.Operand
	case *FunctionCall:
		args := n.Arguments
		if args == nil {
			args = []Expr{}
		}
		out.Name, out.Arguments = n.Name, &args
	case *Parenthesized:
		out.Expr = n.Expr
	case *Number:
		isFloat := n.IsFloat
		out.Value, out.IsFloat = n.Value, &isFloat
	case *String:
		out.Value = n.Value
	case *Boolean:
		out.Value = n.Value
	case *Identifier:
		out.Name = n.Name
	default:
		return out, fmt.Errorf("ast: cannot marshal %T", n)
	}
	return out, nil
}

func marshal(n Node) ([]byte, error) {
	out, err := toJSON(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// MarshalJSON implements [json.Marshaler].
func (n *Program) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *ExpressionStatement) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *Assignment) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *BinaryOp) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *UnaryOp) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *FunctionCall) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *Parenthesized) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *Number) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *String) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *Boolean) MarshalJSON() ([]byte, error) { return marshal(n) }

// MarshalJSON implements [json.Marshaler].
func (n *Identifier) MarshalJSON() ([]byte, error) { return marshal(n) }
