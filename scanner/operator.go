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

import "github.com/bufbuild/exprcompile/token"

// twoCharOperators are the operators spelled with two characters. Any other
// operator character stands alone.
var twoCharOperators = map[string]bool{
	"==": true, "!=": true, "<=": true, ">=": true,
	"&&": true, "||": true, "++": true, "--": true,
}

func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '<', '>', '!', '&', '|':
		return true
	default:
		return false
	}
}

// lexOperator scans an operator whose first character has already been
// consumed, taking a second character if the pair is a known operator.
func (s *Scanner) lexOperator(first rune) token.Token {
	if next := s.peek(); next != -1 {
		if op := string([]rune{first, next}); twoCharOperators[op] {
			s.pop()
			return token.NewOperator(op)
		}
	}
	return token.NewOperator(string(first))
}
