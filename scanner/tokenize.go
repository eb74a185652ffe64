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
	"iter"

	"github.com/bufbuild/exprcompile/token"
)

// Tokenize returns a lazy sequence of the tokens in text.
//
// The sequence yields every token up to and including the terminating EOF.
// If scanning fails, it yields the error (with a zero token) and stops.
// Each iteration scans from the start with a fresh [Scanner], so the
// sequence can be ranged over any number of times.
func Tokenize(text string, opts ...Option) iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		s := New(text, opts...)
		for {
			tok, err := s.Next()
			if err != nil {
				yield(token.Token{}, err)
				return
			}
			if !yield(tok, nil) || tok.IsEOF() {
				return
			}
		}
	}
}

// TokenizeAll scans all of text, returning every token including the final
// EOF. On failure, it returns the tokens scanned before the error along with
// the error.
func TokenizeAll(text string, opts ...Option) ([]token.Token, error) {
	var toks []token.Token
	for tok, err := range Tokenize(text, opts...) {
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
