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

// Package scanner converts expression source text into [token.Token]s.
//
// A [Scanner] is pull-based: each call to [Scanner.Next] consumes exactly as
// much input as one token needs. Once the input is exhausted, Next returns
// an [token.EOF] token on every call.
//
// # Bracket Balancing
//
// The scanner balances brackets with one counter per bracket family, not
// with a stack. An opener increments the counter of its own family and a
// closer decrements it; a closer whose family counter is already zero is a
// [MismatchedBracketsError]. Because only counts are kept, the order in which
// families are closed is not checked: "([)]" scans without error, and "(]"
// fails only because no '[' is open. Cross-family order is a known limitation
// and is not checked anywhere.
package scanner

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"

	"github.com/bufbuild/exprcompile/token"
)

var nopLogger slog.Logger = logger.NewNopLogger()

// Option configures a [Scanner].
type Option func(*Scanner)

// WithLogger sets the logger that receives a debug line for every token.
func WithLogger(l slog.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.logger = l
		}
	}
}

// Scanner is a pull-based lexer over a fully materialized source text.
//
// A Scanner is not safe for concurrent use; concurrent scans each need their
// own Scanner.
type Scanner struct {
	text   string
	cursor int
	pos    token.Position

	depths brackets
	logger slog.Logger
}

// New returns a Scanner positioned at the start of text.
func New(text string, opts ...Option) *Scanner {
	s := &Scanner{
		text:   text,
		pos:    token.Start,
		logger: nopLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewReader reads all of r and returns a Scanner over its contents.
//
// Any read failure is returned as an [IOFailureError].
func NewReader(r io.Reader, opts ...Option) (*Scanner, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOFailureError{Err: err}
	}
	return New(string(text), opts...), nil
}

// Pos returns the position of the next unconsumed character.
func (s *Scanner) Pos() token.Position {
	return s.pos
}

// Depth returns the number of currently unmatched openers in the bracket
// family of the given bracket, which may be either an opener or a closer.
func (s *Scanner) Depth(bracket rune) int {
	return s.depths.depth(bracket)
}

// Next scans and returns the next token.
//
// At end of input, Next returns an EOF token, and keeps doing so on every
// subsequent call.
func (s *Scanner) Next() (token.Token, error) {
	s.skipSpace()

	start := s.pos
	r := s.pop()
	if r == -1 {
		return token.Token{Kind: token.EOF, Pos: start}, nil
	}

	tok, err := s.lexToken(r, start)
	if err != nil {
		s.logger.Debugf("scan failed at %v: %v", start, err)
		return token.Token{}, err
	}
	tok.Pos = start
	s.logger.Debugf("scanned %v at %v", tok, start)
	return tok, nil
}

// Expect scans the next token and checks that it has the given kind.
func (s *Scanner) Expect(kind token.Kind) (token.Token, error) {
	tok, err := s.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, &UnexpectedSymbolError{Expected: kind, Found: tok}
	}
	return tok, nil
}

func (s *Scanner) lexToken(r rune, start token.Position) (token.Token, error) {
	switch {
	case isOpener(r):
		return token.NewPunct(r, token.Open, s.depths.open(r)), nil
	case isCloser(r):
		depth, ok := s.depths.close(r)
		if !ok {
			return token.Token{}, &MismatchedBracketsError{Closer: r, Opener: matching(r), Pos: start}
		}
		return token.NewPunct(r, token.Close, depth), nil
	case r == ',' || r == ';':
		return token.NewPunct(r, token.Separator, 0), nil
	case '0' <= r && r <= '9':
		return s.lexNumber(start)
	case r == '"':
		return s.lexString(start)
	case isOperatorStart(r):
		return s.lexOperator(r), nil
	case unicode.IsLetter(r) || r == '_':
		return s.lexIdent(r), nil
	default:
		return token.Token{}, &UnknownSymbolError{Symbol: r, Pos: start}
	}
}

func (s *Scanner) lexIdent(first rune) token.Token {
	start := s.cursor - utf8.RuneLen(first)
	s.takeWhile(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
	})

	switch name := s.text[start:s.cursor]; name {
	case "true":
		return token.NewBool(true)
	case "false":
		return token.NewBool(false)
	default:
		return token.NewIdent(name)
	}
}

// skipSpace consumes whitespace, as defined by [unicode.IsSpace].
func (s *Scanner) skipSpace() {
	s.takeWhile(unicode.IsSpace)
}

// peek returns the next rune without consuming it, or -1 at end of input.
func (s *Scanner) peek() rune {
	if s.cursor >= len(s.text) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.cursor:])
	return r
}

// pop consumes the next rune and returns it, or -1 at end of input.
func (s *Scanner) pop() rune {
	if s.cursor >= len(s.text) {
		return -1
	}
	r, n := utf8.DecodeRuneInString(s.text[s.cursor:])
	s.cursor += n
	s.pos.Offset = s.cursor
	if r == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	return r
}

// takeWhile consumes runes for as long as pred holds, and returns the
// consumed text.
func (s *Scanner) takeWhile(pred func(rune) bool) string {
	start := s.cursor
	for {
		r := s.peek()
		if r == -1 || !pred(r) {
			break
		}
		s.pop()
	}
	return s.text[start:s.cursor]
}
