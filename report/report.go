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

// Package report renders errors about expression source as diagnostics for
// people to read, with annotated snippets of the offending text.
package report

import (
	"fmt"
	"strings"
)

const (
	Error Level = 1 + iota
	Warning
	Remark
	note // Secondary snippets.
)

const (
	// Simple renders each diagnostic as one line, like the Go compiler.
	Simple Style = 1 + iota
	// Monochrome renders annotated snippets without color.
	Monochrome
	// Colored is Monochrome with ANSI colors.
	Colored
)

// Level represents the severity of a diagnostic message.
type Level int8

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

// ParseStyle parses a style name: "simple", "monochrome", "colored" or
// "auto". "auto" picks Colored when tty is set and Monochrome otherwise.
func ParseStyle(name string, tty bool) (Style, error) {
	switch strings.ToLower(name) {
	case "simple":
		return Simple, nil
	case "monochrome":
		return Monochrome, nil
	case "colored":
		return Colored, nil
	case "auto", "":
		if tty {
			return Colored, nil
		}
		return Monochrome, nil
	default:
		return 0, fmt.Errorf("unknown report style %q", name)
	}
}

// Diagnostic is an error that can be rendered with source context.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// How severe the diagnostic is.
	Level Level

	mention     string
	snippets    []snippet
	notes, help []string
}

type snippet struct {
	file       File
	start, end Location
	message    string
	primary    bool
}

// Primary returns this diagnostic's primary snippet, if it has one.
func (d *Diagnostic) Primary() (file File, start, end Location) {
	if len(d.snippets) == 0 {
		file.Path = d.mention
		return
	}
	return d.snippets[0].file, d.snippets[0].start, d.snippets[0].end
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// MentionFile causes a diagnostic without snippets to mention the given file.
func MentionFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.mention = path }
}

// SnippetAt adds a snippet of source to the diagnostic, annotated with a
// message.
//
// The first snippet added is the primary one, and is rendered differently
// from the others.
func SnippetAt(span Span, format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.snippets = append(d.snippets, snippet{
			file:    span.File(),
			start:   span.Start(),
			end:     span.End(),
			message: fmt.Sprintf(format, args...),
			primary: len(d.snippets) == 0,
		})
	}
}

// Note adds context about the diagnostic, shown after the snippets.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help adds a suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err error, opts ...DiagnosticOption) {
	r.push(err, Error, opts)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err error, opts ...DiagnosticOption) {
	r.push(err, Warning, opts)
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err error, opts ...DiagnosticOption) {
	r.push(err, Remark, opts)
}

// Errors returns the number of error diagnostics in the report.
func (r Report) Errors() int {
	var n int
	for _, d := range r {
		if d.Level == Error {
			n++
		}
	}
	return n
}

func (r *Report) push(err error, level Level, opts []DiagnosticOption) {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]
	for _, opt := range opts {
		opt(d)
	}
}
