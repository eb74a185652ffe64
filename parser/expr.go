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

package parser

import (
	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/token"
)

// binaryLevels lists the operators of each binary precedence level, from
// loosest to tightest.
var binaryLevels = [...][]string{
	{"||"},
	{"&&"},
	{"==", "!="},
	{"<", ">", "<=", ">="},
	{"+", "-"},
	{"*", "/"},
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAssignment()
}

// parseAssignment parses a right-associative chain of '='.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.cur.IsOperator("=") {
		return left, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	right, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{
		Left:   left,
		Right:  right,
		Source: ast.Join(left.Span(), right.Span()),
	}, nil
}

// parseBinary parses one binary precedence level. Operands are parsed at the
// next tighter level; operators of this level fold to the left.
func (p *Parser) parseBinary(level int) (ast.Expr, error) {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}

	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.cur.IsOperator(binaryLevels[level]...) {
		op := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{
			Left:     left,
			Operator: op,
			Right:    right,
			Source:   ast.Join(left.Span(), right.Span()),
		}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if !p.cur.IsOperator("-", "!") {
		return p.parsePrimary()
	}

	op := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{
		Operator: op.Text,
		Operand:  operand,
		Source:   p.spanFrom(op.Pos),
	}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.cur
	switch tok.Kind {
	case token.EOF:
		return nil, &UnexpectedEndOfInputError{Pos: tok.Pos}
	case token.Number, token.String, token.Bool:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return literal(tok, p.spanFrom(tok.Pos)), nil
	case token.Ident:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.IsPunct('(') {
			return p.parseCall(tok)
		}
		return &ast.Identifier{Name: tok.Text, Source: p.spanFrom(tok.Pos)}, nil
	case token.Punct:
		if tok.IsPunct('(') {
			return p.parseParens()
		}
	}
	return nil, &UnexpectedTokenError{Expected: "expression", Found: tok}
}

func literal(tok token.Token, span ast.Span) ast.Expr {
	switch tok.Kind {
	case token.Number:
		return &ast.Number{Value: tok.Text, IsFloat: tok.Hint == token.Float, Source: span}
	case token.String:
		return &ast.String{Value: tok.Text, Source: span}
	default:
		return &ast.Boolean{Value: tok.Value, Source: span}
	}
}

// parseCall parses the argument list of a call to name. The lookahead is
// the opening parenthesis.
func (p *Parser) parseCall(name token.Token) (ast.Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	args := []ast.Expr{}
	for !p.cur.IsPunct(')') {
		if p.cur.IsEOF() {
			return nil, &UnexpectedTokenError{Expected: "closing parenthesis", Found: p.cur}
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.cur.IsPunct(',') {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{
		Name:      name.Text,
		Arguments: args,
		Source:    p.spanFrom(name.Pos),
	}, nil
}

// parseParens parses a parenthesized expression. The lookahead is the
// opening parenthesis.
func (p *Parser) parseParens() (ast.Expr, error) {
	open := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.cur.IsPunct(')') {
		return nil, &UnexpectedTokenError{Expected: "closing parenthesis", Found: p.cur}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Parenthesized{Expr: expr, Source: p.spanFrom(open.Pos)}, nil
}
