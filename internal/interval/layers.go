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

package interval

import "iter"

// Layers is a stack of [Map]s for intervals that nest, such as the source
// ranges of the nodes of a tree.
//
// Each layer holds disjoint intervals. Intervals in deeper layers are
// expected to lie within intervals of shallower layers, so that looking up
// a key layer by layer, from the top, finds a chain of enclosing intervals.
//
// A zero value is ready to use.
type Layers[K Endpoint, V any] struct {
	layers []*Map[K, V]
}

// Depth returns the number of layers.
func (l *Layers[K, V]) Depth() int {
	return len(l.layers)
}

// Insert inserts [start, end] into the given layer, growing the stack as
// needed. If it overlaps an interval already in that layer, it is not
// inserted and the overlap is returned, as for [Map.Insert].
func (l *Layers[K, V]) Insert(layer int, start, end K, value V) (overlap Interval[K, V]) {
	for len(l.layers) <= layer {
		l.layers = append(l.layers, new(Map[K, V]))
	}
	return l.layers[layer].Insert(start, end, value)
}

// Stack returns an iterator over the intervals containing key, starting at
// the top layer. It stops at the first layer without such an interval.
func (l *Layers[K, V]) Stack(key K) iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		for _, layer := range l.layers {
			found := layer.Get(key)
			if found.Value == nil || !yield(found) {
				return
			}
		}
	}
}

// Innermost returns the deepest interval in the chain returned by
// [Layers.Stack]. Its Value is nil if no interval contains key.
func (l *Layers[K, V]) Innermost(key K) Interval[K, V] {
	var last Interval[K, V]
	for found := range l.Stack(key) {
		last = found
	}
	return last
}
