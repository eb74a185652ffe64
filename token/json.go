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
	"encoding/json"
	"fmt"
)

// jsonToken is the wire form of a Token: a "kind" tag plus only the payload
// fields that the kind uses.
type jsonToken struct {
	Kind    string    `json:"kind"`
	Raw     string    `json:"raw,omitempty"`
	Balance string    `json:"balance,omitempty"`
	Depth   *int      `json:"depth,omitempty"`
	Text    *string   `json:"text,omitempty"`
	Hint    string    `json:"hint,omitempty"`
	Value   any       `json:"value,omitempty"`
	Pos     *Position `json:"pos,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (t Token) MarshalJSON() ([]byte, error) {
	out := jsonToken{Kind: t.Kind.String()}
	if t.Pos.IsValid() {
		pos := t.Pos
		out.Pos = &pos
	}

	switch t.Kind {
	case EOF:
	case Punct:
		out.Raw = string(t.Raw)
		out.Balance = t.Balance.String()
		if t.Balance != Separator {
			depth := t.Depth
			out.Depth = &depth
		}
	case Number:
		out.Raw = t.Text
		out.Hint = t.Hint.String()
	case String:
		out.Value = t.Text
	case Bool:
		out.Value = t.Value
	case Operator, Ident, Unknown:
		text := t.Text
		out.Text = &text
	default:
		return nil, fmt.Errorf("token: cannot marshal %#v", t.Kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Token) UnmarshalJSON(data []byte) error {
	var in jsonToken
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	kind, ok := KindFromString(in.Kind)
	if !ok {
		return fmt.Errorf("token: unknown kind %q", in.Kind)
	}

	*t = Token{Kind: kind}
	if in.Pos != nil {
		t.Pos = *in.Pos
	}

	switch kind {
	case Punct:
		raw := []rune(in.Raw)
		if len(raw) != 1 {
			return fmt.Errorf("token: punctuation must be one character, got %q", in.Raw)
		}
		t.Raw = raw[0]
		if t.Balance, ok = BalanceFromString(in.Balance); !ok {
			return fmt.Errorf("token: unknown balance %q", in.Balance)
		}
		if in.Depth != nil {
			t.Depth = *in.Depth
		}
	case Number:
		t.Text = in.Raw
		if t.Hint, ok = NumberHintFromString(in.Hint); !ok {
			return fmt.Errorf("token: unknown number hint %q", in.Hint)
		}
	case String:
		if in.Value != nil {
			if t.Text, ok = in.Value.(string); !ok {
				return fmt.Errorf("token: string value must be a string, got %T", in.Value)
			}
		}
	case Bool:
		if in.Value != nil {
			if t.Value, ok = in.Value.(bool); !ok {
				return fmt.Errorf("token: bool value must be a bool, got %T", in.Value)
			}
		}
	case Operator, Ident, Unknown:
		if in.Text != nil {
			t.Text = *in.Text
		}
	}
	return nil
}
