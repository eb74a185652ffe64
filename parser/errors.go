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
	"fmt"

	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/token"
)

// Sentinels for use with [errors.Is].
var (
	ErrLexerFailure         = errors.New("lexer failure")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrInvalidSyntax        = errors.New("invalid syntax")
)

// LexerFailureError wraps an error from the scanner. Use [errors.As] to
// recover the scanner's own error type.
type LexerFailureError struct {
	Err error
}

func (e *LexerFailureError) Error() string {
	return fmt.Sprintf("lexer failure: %v", e.Err)
}

// GetPosition implements [reporter.ErrorWithPos].
func (e *LexerFailureError) GetPosition() token.Position {
	pos, _ := reporter.PositionOf(e.Err)
	return pos
}

func (e *LexerFailureError) Unwrap() error { return e.Err }

func (e *LexerFailureError) Is(target error) bool { return target == ErrLexerFailure }

// UnexpectedTokenError is returned when the parser finds a token that
// cannot continue the current construct.
type UnexpectedTokenError struct {
	// Expected describes what would have been accepted, such as
	// "expression" or "closing parenthesis".
	Expected string
	Found    token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: expected %s, found %v", e.Expected, e.Found)
}

func (e *UnexpectedTokenError) GetPosition() token.Position { return e.Found.Pos }

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// UnexpectedEndOfInputError is returned when the input ends where an
// expression is required.
type UnexpectedEndOfInputError struct {
	Pos token.Position
}

func (e *UnexpectedEndOfInputError) Error() string {
	return "unexpected end of input"
}

func (e *UnexpectedEndOfInputError) GetPosition() token.Position { return e.Pos }

func (e *UnexpectedEndOfInputError) Unwrap() error { return ErrUnexpectedEndOfInput }

// InvalidSyntaxError is a structural error not covered by the other types.
type InvalidSyntaxError struct {
	Message string
	Pos     token.Position
}

func (e *InvalidSyntaxError) Error() string {
	return "invalid syntax: " + e.Message
}

func (e *InvalidSyntaxError) GetPosition() token.Position { return e.Pos }

func (e *InvalidSyntaxError) Unwrap() error { return ErrInvalidSyntax }

var (
	_ reporter.ErrorWithPos = (*LexerFailureError)(nil)
	_ reporter.ErrorWithPos = (*UnexpectedTokenError)(nil)
	_ reporter.ErrorWithPos = (*UnexpectedEndOfInputError)(nil)
	_ reporter.ErrorWithPos = (*InvalidSyntaxError)(nil)
)
