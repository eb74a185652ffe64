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
	"strings"

	"github.com/bufbuild/exprcompile/token"
)

// lexString scans a string literal whose opening quote has already been
// consumed.
//
// A backslash is dropped and the character after it is kept as is, so \" is
// a quote and \\ is a backslash. Escapes such as \n are not interpreted: \n
// decodes to the letter n.
func (s *Scanner) lexString(start token.Position) (token.Token, error) {
	var buf strings.Builder
	for {
		switch r := s.pop(); r {
		case -1:
			return token.Token{}, &UnterminatedLiteralError{Text: buf.String(), Pos: start}
		case '"':
			return token.NewString(buf.String()), nil
		case '\\':
			escaped := s.pop()
			if escaped == -1 {
				return token.Token{}, &UnterminatedLiteralError{Text: buf.String(), Pos: start}
			}
			buf.WriteRune(escaped)
		default:
			buf.WriteRune(r)
		}
	}
}
