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
	"unicode/utf8"

	"github.com/bufbuild/exprcompile/parser"
	"github.com/bufbuild/exprcompile/report"
	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/scanner"
)

// Diagnose adds a diagnostic for err, an error from scanning, parsing or
// compiling the given file, to r.
//
// The diagnostic points at the offending text when err has a position.
// [ErrEmptyFile] becomes a warning; everything else is an error.
func Diagnose(r *report.Report, file *report.IndexedFile, err error) {
	cause := err
	var ferr *FileError
	if errors.As(err, &ferr) {
		cause = ferr.Err
	}

	var opts []report.DiagnosticOption
	if pos, ok := reporter.PositionOf(err); ok && pos.IsValid() {
		span := file.NewSpan(pos.Offset, pos.Offset+width(cause))
		opts = append(opts, report.SnippetAt(span, "%s", annotation(cause)))
	} else {
		opts = append(opts, report.MentionFile(file.File().Path))
	}
	if help := help(cause); help != "" {
		opts = append(opts, report.Help("%s", help))
	}

	if errors.Is(cause, ErrEmptyFile) {
		r.Warn(cause, opts...)
		return
	}
	r.Error(cause, opts...)
}

// width returns the length in bytes of the text err is about.
func width(err error) int {
	var (
		unexpected *parser.UnexpectedTokenError
		unknown    *scanner.UnknownSymbolError
		number     *scanner.InvalidNumericLiteralError
		brackets   *scanner.MismatchedBracketsError
		syntax     *parser.InvalidSyntaxError
		literal    *scanner.UnterminatedLiteralError
	)
	switch {
	case errors.As(err, &unexpected):
		return unexpected.Found.Len()
	case errors.As(err, &unknown):
		return utf8.RuneLen(unknown.Symbol)
	case errors.As(err, &number):
		return len(number.Raw)
	case errors.As(err, &brackets), errors.As(err, &syntax), errors.As(err, &literal):
		return 1
	default:
		return 0
	}
}

func annotation(err error) string {
	var (
		unexpected *parser.UnexpectedTokenError
		brackets   *scanner.MismatchedBracketsError
	)
	switch {
	case errors.As(err, &unexpected):
		return "expected " + unexpected.Expected
	case errors.As(err, &brackets):
		return "no open '" + string(brackets.Opener) + "' to close"
	case errors.Is(err, parser.ErrUnexpectedEndOfInput):
		return "expected an expression"
	case errors.Is(err, scanner.ErrUnknownSymbol):
		return "not a valid character here"
	case errors.Is(err, scanner.ErrInvalidNumericLiteral):
		return "malformed number"
	case errors.Is(err, scanner.ErrUnterminatedLiteral):
		return "string starts here"
	default:
		return ""
	}
}

func help(err error) string {
	switch {
	case errors.Is(err, scanner.ErrMismatchedBrackets):
		return "brackets are counted per family: each of (), [] and {} is balanced on its own"
	case errors.Is(err, scanner.ErrInvalidNumericLiteral):
		return "a number is digits with an optional fraction and exponent, such as 1.5e-3"
	case errors.Is(err, scanner.ErrUnterminatedLiteral):
		return `close the string with a '"'`
	case strayComma(err):
		return "',' only separates the arguments of a call; separate statements with ';'"
	case errors.Is(err, ErrEmptyFile):
		return "an empty file is valid, but probably not intended"
	default:
		return ""
	}
}

// strayComma returns whether err is about a ',' where an expression must
// start.
func strayComma(err error) bool {
	var unexpected *parser.UnexpectedTokenError
	return errors.As(err, &unexpected) && unexpected.Found.IsPunct(',')
}
