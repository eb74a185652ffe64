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

package exprcompile

import (
	"errors"

	"github.com/bufbuild/exprcompile/parser"
	"github.com/bufbuild/exprcompile/scanner"
)

// ErrEmptyFile is reported as a warning for a file with no statements.
var ErrEmptyFile = errors.New("file contains no statements")

// kinds maps error sentinels to the names [ErrorKind] reports. Scanner
// errors come first, so that a lexer failure is named after its cause.
var kinds = []struct {
	err  error
	name string
}{
	{scanner.ErrIOFailure, "IOFailure"},
	{scanner.ErrUnexpectedSymbol, "UnexpectedSymbol"},
	{scanner.ErrInvalidNumericLiteral, "InvalidNumericLiteral"},
	{scanner.ErrMismatchedBrackets, "MismatchedBrackets"},
	{scanner.ErrUnknownSymbol, "UnknownSymbol"},
	{scanner.ErrUnterminatedLiteral, "UnterminatedLiteral"},
	{parser.ErrLexerFailure, "LexerFailure"},
	{parser.ErrUnexpectedToken, "UnexpectedToken"},
	{parser.ErrUnexpectedEndOfInput, "UnexpectedEndOfInput"},
	{parser.ErrInvalidSyntax, "InvalidSyntax"},
	{ErrEmptyFile, "EmptyFile"},
}

// ErrorKind returns a short name for the kind of err, such as
// "MismatchedBrackets", or "Unknown" if err did not come from scanning or
// parsing.
func ErrorKind(err error) string {
	for _, kind := range kinds {
		if errors.Is(err, kind.err) {
			return kind.name
		}
	}
	return "Unknown"
}
