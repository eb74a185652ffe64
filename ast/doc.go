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

// Package ast defines types for modeling the syntax tree of an expression
// program.
//
// The root of every tree is a [*Program], which holds a sequence of
// [*ExpressionStatement]s. Every other node is an [Expr]. The set of node
// types is closed: user code should not attempt to implement [Node].
//
// Nodes are built bottom-up by package parser and are not modified
// afterward. Every child is owned by exactly one parent, so a tree never
// shares a node between two places.
//
// Literals keep their source text: a [*Number] stores the raw digits
// rather than a converted value, so no precision is lost.
package ast

//go:generate go run github.com/bufbuild/exprcompile/internal/enum kind.yaml
