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

// brackets holds one unmatched-opener counter per bracket family, indexed
// by [family].
type brackets [3]int

// family returns the index of the bracket family of r, or -1 if r is not a
// bracket.
func family(r rune) int {
	switch r {
	case '(', ')':
		return 0
	case '[', ']':
		return 1
	case '{', '}':
		return 2
	default:
		return -1
	}
}

func isOpener(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

func isCloser(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// matching returns the other half of a bracket pair.
func matching(r rune) rune {
	switch r {
	case '(':
		return ')'
	case ')':
		return '('
	case '[':
		return ']'
	case ']':
		return '['
	case '{':
		return '}'
	case '}':
		return '{'
	default:
		return r
	}
}

// open records an opener and returns the family depth before it.
func (b *brackets) open(r rune) int {
	f := family(r)
	depth := b[f]
	b[f]++
	return depth
}

// close records a closer and returns the family depth after it. It returns
// false if there is no unmatched opener of the same family.
func (b *brackets) close(r rune) (int, bool) {
	f := family(r)
	if b[f] == 0 {
		return 0, false
	}
	b[f]--
	return b[f], true
}

func (b *brackets) depth(r rune) int {
	f := family(r)
	if f < 0 {
		return 0
	}
	return b[f]
}
