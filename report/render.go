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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case note:
		return "note"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Render renders this report in a format suitable for showing to a user.
//
// Except in the Simple style, the diagnostics are followed by a count of
// the errors and warnings.
func (r *Report) Render(style Style) string {
	var out strings.Builder
	var errors, warnings int
	for i := range *r {
		d := &(*r)[i]
		out.WriteString(d.Render(style))
		out.WriteByte('\n')
		if style != Simple {
			out.WriteByte('\n')
		}
		switch d.Level {
		case Error:
			errors++
		case Warning:
			warnings++
		}
	}
	if style == Simple {
		return out.String()
	}

	p := newPalette(style)
	switch {
	case errors > 0:
		summary := "encountered " + pluralize(errors, "error")
		if warnings > 0 {
			summary += " and " + pluralize(warnings, "warning")
		}
		fmt.Fprintln(&out, p.paint(p.level(Error), summary))
	case warnings > 0:
		fmt.Fprintln(&out, p.paint(p.level(Warning), "encountered "+pluralize(warnings, "warning")))
	}
	return out.String()
}

func pluralize(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return fmt.Sprint(count, " ", what, "s")
}

// Render renders this diagnostic in a format suitable for showing to a user.
func (d *Diagnostic) Render(style Style) string {
	// The simple style imitates the Go compiler.
	if style == Simple {
		file, start, _ := d.Primary()
		if file.Path == "" {
			file.Path = "<unknown>"
		}
		if start.Line == 0 {
			return fmt.Sprintf("%v: %s: %v", d.Level, file.Path, d.Err)
		}
		return fmt.Sprintf("%v: %s:%d:%d: %v", d.Level, file.Path, start.Line, start.Column, d.Err)
	}

	// The other styles imitate the Rust compiler.
	p := newPalette(style)
	var out strings.Builder
	out.WriteString(p.paint(p.level(d.Level), fmt.Sprintf("%v: %v", d.Level, d.Err)))

	var greatestLine int
	for _, snip := range d.snippets {
		greatestLine = max(greatestLine, snip.start.Line)
	}
	barWidth := max(2, len(strconv.Itoa(greatestLine)))
	pad := strings.Repeat(" ", barWidth)

	for i, group := range byFile(d.snippets) {
		arrow := "-->"
		if i > 0 {
			arrow = ":::"
		}
		first := group[0]
		fmt.Fprintf(&out, "\n%s%s", pad, p.paint(p.bar,
			fmt.Sprintf("%s %s:%d:%d", arrow, first.file.Path, first.start.Line, first.start.Column)))
		out.WriteString("\n" + pad + p.paint(p.bar, " |"))
		renderWindow(&out, group, barWidth, d.Level, p)
	}

	if len(d.snippets) == 0 {
		path := d.mention
		if path == "" {
			path = "<unknown>"
		}
		fmt.Fprintf(&out, "\n%s%s", pad, p.paint(p.bar, "--> "+path+":?:?"))
	}

	var footers [][2]string
	for _, note := range d.notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.help {
		footers = append(footers, [2]string{"help", help})
	}
	for _, footer := range footers {
		fmt.Fprintf(&out, "\n%s%s %s %s", pad, p.paint(p.bar, " ="), p.paint(p.label, footer[0]+":"), footer[1])
	}

	return out.String()
}

// byFile splits snippets into runs that share a file.
func byFile(snippets []snippet) [][]snippet {
	var groups [][]snippet
	for i, snip := range snippets {
		if i == 0 || snip.file.Path != snippets[i-1].file.Path {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], snip)
	}
	return groups
}

// renderWindow renders the source lines that snippets point into, each
// followed by one underline per snippet on that line. Lines that are not
// adjacent are separated by a '~'.
//
// A snippet spanning several lines is underlined to the end of its first
// line.
func renderWindow(out *strings.Builder, snippets []snippet, barWidth int, level Level, p palette) {
	pad := strings.Repeat(" ", barWidth)
	sorted := slices.Clone(snippets)
	slices.SortStableFunc(sorted, func(a, b snippet) int {
		if a.start.Line != b.start.Line {
			return a.start.Line - b.start.Line
		}
		return a.start.Column - b.start.Column
	})

	var prevLine int
	for i := 0; i < len(sorted); {
		lineno := sorted[i].start.Line
		if prevLine != 0 && lineno > prevLine+1 {
			out.WriteString("\n" + pad + p.paint(p.bar, " ~"))
		}
		prevLine = lineno

		text := lineAt(sorted[i].file.Text, sorted[i].start.Offset)
		out.WriteString("\n" + p.paint(p.bar, fmt.Sprintf("%*d |", barWidth, lineno)))
		if text != "" {
			out.WriteString(" " + expandTabs(text))
		}

		for ; i < len(sorted) && sorted[i].start.Line == lineno; i++ {
			snip := sorted[i]
			end := snip.end.Column
			if snip.end.Line != snip.start.Line {
				end = stringWidth(text) + 1
			}
			width := max(1, end-snip.start.Column)

			mark, lvl := "-", note
			if snip.primary {
				mark, lvl = "^", level
			}
			underline := strings.Repeat(mark, width)
			if snip.message != "" {
				underline += " " + snip.message
			}
			fmt.Fprintf(out, "\n%s%s %s%s", pad, p.paint(p.bar, " |"),
				strings.Repeat(" ", snip.start.Column-1), p.paint(p.level(lvl), underline))
		}
	}
}

// lineAt returns the line of text containing the byte offset, without its
// line ending.
func lineAt(text string, offset int) string {
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end == -1 {
		end = len(text)
	} else {
		end += offset
	}
	return strings.TrimSuffix(text[start:end], "\r")
}

// palette holds the colors used for pretty-rendering diagnostics. A plain
// palette paints nothing.
type palette struct {
	plain bool

	bar, label *color.Color

	// Underline and message colors, per level.
	errors, warnings, remarks, notes *color.Color
}

func newPalette(style Style) palette {
	if style != Colored {
		return palette{plain: true}
	}

	bold := func(fg color.Attribute) *color.Color {
		c := color.New(fg, color.Bold)
		// Colored is an explicit request, regardless of the terminal.
		c.EnableColor()
		return c
	}
	return palette{
		bar:      bold(color.FgBlue),
		label:    bold(color.FgCyan),
		errors:   bold(color.FgRed),
		warnings: bold(color.FgYellow),
		remarks:  bold(color.FgCyan),
		notes:    bold(color.FgBlue),
	}
}

func (p palette) level(l Level) *color.Color {
	switch l {
	case Error:
		return p.errors
	case Warning:
		return p.warnings
	case Remark:
		return p.remarks
	default:
		return p.notes
	}
}

func (p palette) paint(c *color.Color, s string) string {
	if p.plain || c == nil {
		return s
	}
	return c.Sprint(s)
}
