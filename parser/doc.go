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

// Package parser builds syntax trees from expression source.
//
// The grammar, from loosest to tightest binding:
//
//	program        := (expression ';'?)*
//	expression     := assignment
//	assignment     := or ('=' assignment)?
//	or             := and ('||' and)*
//	and            := equality ('&&' equality)*
//	equality       := comparison (('==' | '!=') comparison)*
//	comparison     := addition (('<' | '>' | '<=' | '>=') addition)*
//	addition       := multiplication (('+' | '-') multiplication)*
//	multiplication := unary (('*' | '/') unary)*
//	unary          := ('-' | '!') unary | primary
//	primary        := number | string | boolean
//	                | identifier
//	                | identifier '(' (expression ','?)* ')'
//	                | '(' expression ')'
//
// Assignment is right-associative; every binary level is left-associative.
// An identifier directly followed by '(' is a call. Commas between call
// arguments are optional, and a trailing comma is allowed.
//
// The parser pulls tokens from a [scanner.Scanner] one at a time. It does
// not recover from errors: the first scanner or syntax error ends the parse.
package parser
