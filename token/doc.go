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

// Package token defines the lexical tokens of the expression language.
//
// A [Token] is a tagged value: its [Kind] says which payload fields are
// meaningful. Punctuation carries the bracket character and its [Balance],
// numbers carry their raw text and a [NumberHint], and so on.
//
// # Bracket Depths
//
// Every bracket token records a depth for its own bracket family. An opener
// records the number of unmatched openers of that family before it; a closer
// records the number left unmatched after it. For a balanced input, each
// closer therefore carries the same depth as the opener it matches.
package token

//go:generate go run github.com/bufbuild/exprcompile/internal/enum kind.yaml
