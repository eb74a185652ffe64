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

// Package reporter contains the types used for reporting errors from
// scanning, parsing and compiling expression source.
package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/exprcompile/token"
)

// ErrInvalidSource is a sentinel error that is returned by compilation if
// errors were reported but the configured reporter never returned a
// non-nil error.
var ErrInvalidSource = errors.New("compile failed: invalid expression source")

// ErrorWithPos is an error about expression source that includes information
// about the location in the text that caused the error.
//
// The value of Error() will contain both the position and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() token.Position
	Unwrap() error
}

// Error wraps err with a source position.
func Error(pos token.Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf creates a new error with a source position.
func Errorf(pos token.Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// PositionOf returns the position of the first ErrorWithPos in err's chain.
func PositionOf(err error) (token.Position, bool) {
	var ewp ErrorWithPos
	if errors.As(err, &ewp) {
		return ewp.GetPosition(), true
	}
	return token.Position{}, false
}

type errorWithPos struct {
	underlying error
	pos        token.Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%v: %v", e.pos, e.underlying)
}

func (e errorWithPos) GetPosition() token.Position {
	return e.pos
}

func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
