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

import "fmt"

// Position is a location in source text.
//
// Line and Column are 1-indexed, so the zero Position can be used as a
// sentinel for "no position". Column counts characters, not bytes. Offset is
// the byte offset from the start of the text.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset" yaml:"offset"`
}

// Start is the position of the first character of any text.
var Start = Position{Line: 1, Column: 1}

// IsValid returns whether this position was set by a scanner.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if !p.IsValid() {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less returns whether p occurs before q.
func (p Position) Less(q Position) bool {
	return p.Offset < q.Offset
}
