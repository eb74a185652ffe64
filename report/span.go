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

package report

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// The size we render all tabstops as.
const TabstopWidth int = 4

// Span is any type that can be used to generate source code information for
// a diagnostic.
type Span interface {
	File() File
	Start() Location
	End() Location
}

// File is a source file involved in a diagnostic.
type File struct {
	// The path for this file. It doesn't need to be a real path, but it is
	// used to group snippets by file.
	Path string

	// The complete text of the file.
	Text string
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// Column is measured in terminal cells, not bytes: the rune A is one
	// column wide, 貓 is two, and a tab advances to the next multiple of
	// [TabstopWidth].
	//
	// Because these are 1-indexed, a zero Line can be used as a sentinel.
	Line, Column int

	// The UTF-16 code unit offset of this location from the start of its
	// line, as used by editors speaking LSP.
	UTF16 int
}

// IndexedFile is an index of line information from a [File], which permits
// O(log n) calculation of [Location]s from offsets.
type IndexedFile struct {
	file File

	once sync.Once
	// The offset of the start of each line.
	lines []int
}

// NewIndexedFile constructs a line index for the given file. The index is
// built lazily, on the first call to [IndexedFile.Search].
func NewIndexedFile(file File) *IndexedFile {
	return &IndexedFile{file: file}
}

// File returns the file that this index indexes.
func (i *IndexedFile) File() File {
	return i.file
}

// NewSpan returns the span of the byte range [start, end) of the file.
func (i *IndexedFile) NewSpan(start, end int) Span {
	return naiveSpan{
		file:  i.file,
		start: i.Search(start),
		end:   i.Search(end),
	}
}

// Search builds full Location information for the given byte offset. Offsets
// past the end of the file are clamped to it.
func (i *IndexedFile) Search(offset int) Location {
	i.index()
	offset = min(max(offset, 0), len(i.file.Text))

	// Find the last line that starts at or before offset.
	line, exact := slices.BinarySearch(i.lines, offset)
	if !exact {
		line--
	}

	chunk := i.file.Text[i.lines[line]:offset]
	var utf16Col int
	for _, r := range chunk {
		utf16Col += utf16.RuneLen(r)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: stringWidth(chunk) + 1,
		UTF16:  utf16Col,
	}
}

func (i *IndexedFile) index() {
	i.once.Do(func() {
		i.lines = append(i.lines, 0)
		for at := range len(i.file.Text) {
			if i.file.Text[at] == '\n' {
				i.lines = append(i.lines, at+1)
			}
		}
	})
}

// stringWidth returns the number of terminal cells s occupies, expanding
// tabs to [TabstopWidth].
func stringWidth(s string) int {
	var width int
	state := -1
	for s != "" {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			width += TabstopWidth - width%TabstopWidth
			continue
		}
		width += w
	}
	return width
}

// expandTabs replaces each tab in s with enough spaces to reach the next
// tabstop.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var out strings.Builder
	var width int
	state := -1
	for s != "" {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			n := TabstopWidth - width%TabstopWidth
			out.WriteString(strings.Repeat(" ", n))
			width += n
			continue
		}
		out.WriteString(cluster)
		width += w
	}
	return out.String()
}

type naiveSpan struct {
	file       File
	start, end Location
}

func (s naiveSpan) File() File      { return s.file }
func (s naiveSpan) Start() Location { return s.start }
func (s naiveSpan) End() Location   { return s.end }
