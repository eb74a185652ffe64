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
	"unicode"

	"github.com/bufbuild/exprcompile/token"
)

// lexNumber scans a numeric literal whose first digit has already been
// consumed.
//
// The literal is digits with at most one '.', and at most one exponent. An
// exponent is 'e' or 'E', an optional sign, then at least one digit. A '.'
// is only taken before the exponent. Letters anywhere else make the literal
// invalid. The raw text is kept as written.
func (s *Scanner) lexNumber(start token.Position) (token.Token, error) {
	begin := start.Offset
	var dot, exp bool

	for {
		r := s.peek()
		switch {
		case '0' <= r && r <= '9':
			s.pop()
		case r == '.' && !dot && !exp:
			dot = true
			s.pop()
		case (r == 'e' || r == 'E') && !exp:
			exp = true
			s.pop()
			if next := s.peek(); next == '+' || next == '-' {
				s.pop()
			}
			if next := s.peek(); next < '0' || next > '9' {
				return token.Token{}, &InvalidNumericLiteralError{Raw: s.text[begin:s.cursor], Pos: start}
			}
		case unicode.IsLetter(r):
			s.pop()
			return token.Token{}, &InvalidNumericLiteralError{Raw: s.text[begin:s.cursor], Pos: start}
		default:
			hint := token.Integer
			if dot || exp {
				hint = token.Float
			}
			return token.NewNumber(s.text[begin:s.cursor], hint), nil
		}
	}
}
