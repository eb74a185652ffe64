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

package ast

import "github.com/bufbuild/exprcompile/internal/interval"

// Index answers "which node is at this offset" queries over a tree.
//
// Nodes at the same depth of a parsed tree never overlap, so each depth is
// stored as one layer of disjoint intervals. Nodes with empty or missing
// spans are not indexed.
type Index struct {
	root   Node
	layers interval.Layers[int, Node]
}

// NewIndex builds an index over the tree rooted at root.
func NewIndex(root Node) *Index {
	idx := &Index{root: root}
	Walk(root, func(n Node, depth int) bool {
		span := n.Span()
		if span.IsValid() && span.Len() > 0 {
			// Spans are half-open; interval endpoints are inclusive.
			idx.layers.Insert(depth, span.Start.Offset, span.End.Offset-1, n)
		}
		return true
	})
	return idx
}

// Root returns the node the index was built from.
func (idx *Index) Root() Node {
	return idx.root
}

// At returns the innermost node whose span contains the byte offset, or nil.
func (idx *Index) At(offset int) Node {
	found := idx.layers.Innermost(offset)
	if found.Value == nil {
		return nil
	}
	return *found.Value
}

// Path returns the nodes whose spans contain the byte offset, from the root
// down to the innermost one.
func (idx *Index) Path(offset int) []Node {
	var path []Node
	for found := range idx.layers.Stack(offset) {
		path = append(path, *found.Value)
	}
	return path
}
