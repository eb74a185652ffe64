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

package report_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprcompile/report"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func sample() *report.Report {
	file := report.NewIndexedFile(report.File{
		Path: "calc.expr",
		Text: "x = 1\n\ny = (2 +\n",
	})

	var r report.Report
	r.Error(
		errors.New("unexpected end of input"),
		report.SnippetAt(file.NewSpan(16, 16), "expected an expression"),
		report.SnippetAt(file.NewSpan(11, 12), "unclosed parenthesis"),
		report.SnippetAt(file.NewSpan(0, 1), "x is declared here"),
		report.Help("close the parenthesis"),
	)
	r.Warn(
		errors.New("file is empty"),
		report.MentionFile("empty.expr"),
	)
	return &r
}

func TestRenderSimple(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `error: calc.expr:4:1: unexpected end of input
warning: empty.expr: file is empty
`, sample().Render(report.Simple))
}

func TestRenderMonochrome(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `error: unexpected end of input
  --> calc.expr:4:1
   |
 1 | x = 1
   | - x is declared here
   ~
 3 | y = (2 +
   |     - unclosed parenthesis
 4 |
   | ^ expected an expression
   = help: close the parenthesis

warning: file is empty
  --> empty.expr:?:?

encountered 1 error and 1 warning
`, sample().Render(report.Monochrome))
}

func TestRenderColored(t *testing.T) {
	t.Parallel()

	r := sample()
	colored := r.Render(report.Colored)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, r.Render(report.Monochrome), ansi.ReplaceAllString(colored, ""))
}

func TestRenderUnderlines(t *testing.T) {
	t.Parallel()

	file := report.NewIndexedFile(report.File{Path: "a.expr", Text: "total = price *\n  count"})
	var r report.Report
	r.Error(
		errors.New("bad product"),
		report.SnippetAt(file.NewSpan(8, 23), ""),
		report.Note("multiplication is fine, really"),
	)
	assert.Equal(t, `error: bad product
  --> a.expr:1:9
   |
 1 | total = price *
   |         ^^^^^^^
   = note: multiplication is fine, really`, r[0].Render(report.Monochrome))
	assert.Equal(t, 1, r.Errors())
}

func TestSearch(t *testing.T) {
	t.Parallel()

	file := report.NewIndexedFile(report.File{Text: "ab\n\tc貓d\n"})
	tests := []struct {
		offset int
		want   report.Location
	}{
		{0, report.Location{Offset: 0, Line: 1, Column: 1}},
		{2, report.Location{Offset: 2, Line: 1, Column: 3, UTF16: 2}},
		{3, report.Location{Offset: 3, Line: 2, Column: 1}},
		{4, report.Location{Offset: 4, Line: 2, Column: 5, UTF16: 1}},
		{5, report.Location{Offset: 5, Line: 2, Column: 6, UTF16: 2}},
		{8, report.Location{Offset: 8, Line: 2, Column: 8, UTF16: 3}},
		{10, report.Location{Offset: 10, Line: 3, Column: 1}},
		{99, report.Location{Offset: 10, Line: 3, Column: 1}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, file.Search(test.offset), "offset %d", test.offset)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]report.Style{
		"simple":     report.Simple,
		"Monochrome": report.Monochrome,
		"colored":    report.Colored,
	} {
		got, err := report.ParseStyle(name, false)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	got, err := report.ParseStyle("auto", true)
	require.NoError(t, err)
	assert.Equal(t, report.Colored, got)
	got, err = report.ParseStyle("auto", false)
	require.NoError(t, err)
	assert.Equal(t, report.Monochrome, got)

	_, err = report.ParseStyle("sparkly", false)
	require.Error(t, err)
}
