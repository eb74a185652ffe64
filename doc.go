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

// Package exprcompile scans and parses a small expression language.
//
// The language has numbers, strings, booleans, identifiers, function calls,
// unary and binary operators, parentheses and right-associative assignment.
// A program is a sequence of expressions, each optionally followed by ';'.
//
// The sub-packages hold the phases and their models:
//  1. Scan source text into tokens.
//     Also see: scanner.New, token.Token
//  2. Parse tokens into a syntax tree.
//     Also see: parser.Parse, ast.Program
//  3. Render errors as diagnostics, and trees as Graphviz graphs.
//     Also see: report.Report, dot.Render
//
// This package provides entry points for the common cases: [Tokenize] and
// [Parse] for a single text, and [Compiler] for many files at once.
//
// # Resolvers
//
// A [Resolver] is how the compiler locates its input files. A
// [SourceResolver] reads them from the file system, or from any other
// accessor, such as [SourceAccessorFromMap] in tests. A resolver may also
// answer with an already parsed tree, in which case the file is not parsed
// again.
//
// # Compiler
//
// A [Compiler] accepts a list of paths and produces one [Result] for each.
// Only the Resolver field is required:
//
//	compiler := exprcompile.Compiler{
//	    Resolver: &exprcompile.SourceResolver{},
//	}
//
// This minimal Compiler uses default parallelism, equal to GOMAXPROCS, and
// fails fast at the first error. Set a Reporter to see every error instead.
package exprcompile

import (
	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/parser"
	"github.com/bufbuild/exprcompile/scanner"
	"github.com/bufbuild/exprcompile/token"
)

// Tokenize scans all of text. The returned tokens end with an EOF token,
// unless scanning fails, in which case they are the tokens before the error.
func Tokenize(text string) ([]token.Token, error) {
	return scanner.TokenizeAll(text)
}

// Parse parses text into a program.
func Parse(text string) (*ast.Program, error) {
	return parser.Parse(text)
}
