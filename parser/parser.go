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
	"errors"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"

	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/scanner"
	"github.com/bufbuild/exprcompile/token"
)

// ErrParsed is returned when [Parser.Parse] is called more than once.
var ErrParsed = errors.New("parser: Parse already called")

var nopLogger slog.Logger = logger.NewNopLogger()

// Option configures a [Parser].
type Option func(*Parser)

// WithLogger sets the logger used by the parser and its scanner.
func WithLogger(l slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// Parser is a recursive-descent parser over a single source text.
//
// A Parser is single-use and not safe for concurrent use.
type Parser struct {
	scanner *scanner.Scanner
	logger  slog.Logger
	started bool

	// The lookahead token, and the position just past it.
	cur    token.Token
	curEnd token.Position
	// The position just past the most recently consumed token.
	prevEnd token.Position
}

// New returns a parser over text.
func New(text string, opts ...Option) *Parser {
	p := &Parser{logger: nopLogger}
	for _, opt := range opts {
		opt(p)
	}
	p.scanner = scanner.New(text, scanner.WithLogger(p.logger))
	return p
}

// Parse parses text into a program.
func Parse(text string, opts ...Option) (*ast.Program, error) {
	return New(text, opts...).Parse()
}

// Parse parses the whole text into a program.
//
// On failure, it returns the first error encountered; no partial tree is
// returned.
func (p *Parser) Parse() (*ast.Program, error) {
	if p.started {
		return nil, ErrParsed
	}
	p.started = true

	if err := p.advance(); err != nil {
		return nil, err
	}

	prog := &ast.Program{Statements: []*ast.ExpressionStatement{}}
	for !p.cur.IsEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			p.logger.Debugf("parse failed: %v", err)
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		prog.Source = ast.Join(prog.Source, stmt.Source)
	}
	if len(prog.Statements) == 0 {
		prog.Source = ast.Span{Start: p.cur.Pos, End: p.cur.Pos}
	}

	p.logger.Debugf("parsed %d statements", len(prog.Statements))
	return prog, nil
}

// parseStatement parses an expression and an optional trailing semicolon.
func (p *Parser) parseStatement() (*ast.ExpressionStatement, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ExpressionStatement{Expr: expr, Source: expr.Span()}
	if p.cur.IsPunct(';') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		stmt.Source.End = p.prevEnd
	}
	return stmt, nil
}

// advance consumes the lookahead token and scans the next one.
func (p *Parser) advance() error {
	tok, err := p.scanner.Next()
	if err != nil {
		return &LexerFailureError{Err: err}
	}
	p.prevEnd = p.curEnd
	p.cur = tok
	p.curEnd = p.scanner.Pos()
	return nil
}

// spanFrom returns the span from start to the end of the last consumed token.
func (p *Parser) spanFrom(start token.Position) ast.Span {
	return ast.Span{Start: start, End: p.prevEnd}
}
