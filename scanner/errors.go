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

package scanner

import (
	"errors"
	"fmt"

	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/token"
)

// Sentinels for use with [errors.Is]. Each error type in this package
// matches exactly one of them.
var (
	ErrIOFailure             = errors.New("i/o failure")
	ErrUnexpectedSymbol      = errors.New("unexpected symbol")
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")
	ErrMismatchedBrackets    = errors.New("mismatched brackets")
	ErrUnknownSymbol         = errors.New("unknown symbol")
	ErrUnterminatedLiteral   = errors.New("unterminated literal")
)

// IOFailureError is returned when the source cannot be read.
type IOFailureError struct {
	Err error
}

func (e *IOFailureError) Error() string {
	return fmt.Sprintf("reading source: %v", e.Err)
}

// GetPosition implements [reporter.ErrorWithPos]. Read failures have no
// position.
func (e *IOFailureError) GetPosition() token.Position { return token.Position{} }

func (e *IOFailureError) Unwrap() error { return e.Err }

func (e *IOFailureError) Is(target error) bool { return target == ErrIOFailure }

// UnexpectedSymbolError is returned by [Scanner.Expect] when the next token
// is not of the expected kind.
type UnexpectedSymbolError struct {
	Expected token.Kind
	Found    token.Token
}

func (e *UnexpectedSymbolError) Error() string {
	return fmt.Sprintf("unexpected symbol: expected %v, found %v", e.Expected, e.Found)
}

func (e *UnexpectedSymbolError) GetPosition() token.Position { return e.Found.Pos }

func (e *UnexpectedSymbolError) Unwrap() error { return ErrUnexpectedSymbol }

// InvalidNumericLiteralError is returned for a malformed number. Raw is the
// text scanned up to and including the offending character, if any.
type InvalidNumericLiteralError struct {
	Raw string
	Pos token.Position
}

func (e *InvalidNumericLiteralError) Error() string {
	return fmt.Sprintf("invalid numeric literal %q", e.Raw)
}

func (e *InvalidNumericLiteralError) GetPosition() token.Position { return e.Pos }

func (e *InvalidNumericLiteralError) Unwrap() error { return ErrInvalidNumericLiteral }

// MismatchedBracketsError is returned for a closing bracket with no unmatched
// opener of its family.
type MismatchedBracketsError struct {
	Closer, Opener rune
	Pos            token.Position
}

func (e *MismatchedBracketsError) Error() string {
	return fmt.Sprintf("unmatched closing %q: no open %q remaining", e.Closer, e.Opener)
}

func (e *MismatchedBracketsError) GetPosition() token.Position { return e.Pos }

func (e *MismatchedBracketsError) Unwrap() error { return ErrMismatchedBrackets }

// UnknownSymbolError is returned for a character that cannot start a token.
type UnknownSymbolError struct {
	Symbol rune
	Pos    token.Position
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Symbol)
}

func (e *UnknownSymbolError) GetPosition() token.Position { return e.Pos }

func (e *UnknownSymbolError) Unwrap() error { return ErrUnknownSymbol }

// Token returns the offending character as an [token.Unknown] token.
func (e *UnknownSymbolError) Token() token.Token {
	return token.NewUnknown(string(e.Symbol)).At(e.Pos)
}

// UnterminatedLiteralError is returned when the input ends inside a string
// literal. Text is what was decoded before the input ran out; Pos is the
// position of the opening quote.
type UnterminatedLiteralError struct {
	Text string
	Pos  token.Position
}

func (e *UnterminatedLiteralError) Error() string {
	return "unterminated string literal"
}

func (e *UnterminatedLiteralError) GetPosition() token.Position { return e.Pos }

func (e *UnterminatedLiteralError) Unwrap() error { return ErrUnterminatedLiteral }

var (
	_ reporter.ErrorWithPos = (*IOFailureError)(nil)
	_ reporter.ErrorWithPos = (*UnexpectedSymbolError)(nil)
	_ reporter.ErrorWithPos = (*InvalidNumericLiteralError)(nil)
	_ reporter.ErrorWithPos = (*MismatchedBracketsError)(nil)
	_ reporter.ErrorWithPos = (*UnknownSymbolError)(nil)
	_ reporter.ErrorWithPos = (*UnterminatedLiteralError)(nil)
)
