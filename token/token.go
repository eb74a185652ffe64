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

package token

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Token is a single lexical token.
//
// Which fields are meaningful depends on Kind:
//
//   - [Punct]: Raw, Balance and, for brackets, Depth.
//   - [Operator], [Ident], [Unknown]: Text.
//   - [Number]: Text holds the raw literal, Hint its classification.
//   - [String]: Text holds the decoded value.
//   - [Bool]: Value.
//
// The zero Token is an [EOF] with no position.
type Token struct {
	Kind Kind
	Pos  Position

	Raw     rune
	Balance Balance
	Depth   int

	Text  string
	Hint  NumberHint
	Value bool
}

// NewPunct returns a punctuation token.
func NewPunct(raw rune, balance Balance, depth int) Token {
	if balance == Separator {
		depth = 0
	}
	return Token{Kind: Punct, Raw: raw, Balance: balance, Depth: depth}
}

// NewOperator returns an operator token.
func NewOperator(op string) Token {
	return Token{Kind: Operator, Text: op}
}

// NewIdent returns an identifier token.
func NewIdent(name string) Token {
	return Token{Kind: Ident, Text: name}
}

// NewBool returns a boolean literal token.
func NewBool(value bool) Token {
	return Token{Kind: Bool, Value: value}
}

// NewNumber returns a numeric literal token.
func NewNumber(raw string, hint NumberHint) Token {
	return Token{Kind: Number, Text: raw, Hint: hint}
}

// NewString returns a string literal token holding an already-decoded value.
func NewString(value string) Token {
	return Token{Kind: String, Text: value}
}

// NewUnknown returns a token for unrecognized text.
func NewUnknown(text string) Token {
	return Token{Kind: Unknown, Text: text}
}

// At returns a copy of t positioned at pos.
func (t Token) At(pos Position) Token {
	t.Pos = pos
	return t
}

// IsEOF returns whether this is the end-of-input marker.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// IsPunct returns whether this is the given punctuation character.
func (t Token) IsPunct(raw rune) bool {
	return t.Kind == Punct && t.Raw == raw
}

// IsOperator returns whether this is an operator token with one of the
// given spellings.
func (t Token) IsOperator(ops ...string) bool {
	if t.Kind != Operator {
		return false
	}
	for _, op := range ops {
		if t.Text == op {
			return true
		}
	}
	return false
}

// Equal returns whether t and u are the same token, ignoring position.
func (t Token) Equal(u Token) bool {
	t.Pos, u.Pos = Position{}, Position{}
	return t == u
}

// Len returns the number of bytes this token was spelled with in the
// source, when it can be recovered from the token alone. String literals
// lose their escapes when decoded, so their length is a lower bound.
func (t Token) Len() int {
	switch t.Kind {
	case EOF:
		return 0
	case Punct:
		return utf8.RuneLen(t.Raw)
	case Bool:
		if t.Value {
			return len("true")
		}
		return len("false")
	case String:
		return len(t.Text) + 2
	default:
		return len(t.Text)
	}
}

// String implements [fmt.Stringer].
//
// The result is meant for debugging and error messages, e.g.
// Punct('(' Open 0) or Number(1.5 Float).
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case Punct:
		if t.Balance == Separator {
			return fmt.Sprintf("Punct(%q %v)", t.Raw, t.Balance)
		}
		return fmt.Sprintf("Punct(%q %v %d)", t.Raw, t.Balance, t.Depth)
	case Operator, Unknown:
		return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
	case Ident:
		return fmt.Sprintf("Ident(%s)", t.Text)
	case Bool:
		return "Bool(" + strconv.FormatBool(t.Value) + ")"
	case Number:
		return fmt.Sprintf("Number(%s %v)", t.Text, t.Hint)
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	default:
		return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
	}
}
