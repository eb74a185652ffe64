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

// Command enum writes the Kind enums of the token and ast packages.
//
// Each of those packages lists its enums in a kind.yaml next to its doc.go,
// which carries the directive
//
//	//go:generate go run github.com/bufbuild/exprcompile/internal/enum kind.yaml
//
// Running it replaces kind.go with the constants, the total count, and the
// String, GoString and name lookup methods each enum asks for. The YAML is a
// list of [Enum].
//
//nolint:revive // Fields ending in _ share a name with a method.
package main

import (
	"debug/buildinfo"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Enum is one generated type, such as token.Kind.
type Enum struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type"`  // byte for every enum in this module.
	Docs    string   `yaml:"docs"`
	Total   string   `yaml:"total"` // Constant holding the number of values, e.g. KindTotal.
	Methods []Method `yaml:"methods"`
	Values_ []Value  `yaml:"values"`
}

// Values returns the values in declaration order, linked back to e.
func (e *Enum) Values() []Value {
	for i := range e.Values_ {
		e.Values_[i].Parent = e
		e.Values_[i].Idx = i
	}
	return e.Values_
}

// Value is one constant, such as token.Punct or ast.KindBinaryOp.
type Value struct {
	Name    string `yaml:"name"`
	String_ string `yaml:"string"` // What String returns, if not Name.
	Docs    string `yaml:"docs"`

	Parent *Enum `yaml:"-"`
	Idx    int   `yaml:"-"`
}

// HasSuffixDocs returns whether the docs go at the end of the constant's
// line: they are one line, and the next value also has docs.
func (v Value) HasSuffixDocs() bool {
	if v.Docs == "" || strings.Contains(v.Docs, "\n") {
		return false
	}
	next := v.Idx + 1
	return next >= len(v.Parent.Values_) || v.Parent.Values_[next].Docs != ""
}

func (v Value) String() string {
	if v.String_ == "" {
		return v.Name
	}
	return v.String_
}

// Method is a generated method or function. A from-string method needs an
// explicit name, e.g. KindFromString; the others default to String and
// GoString. Values in Skip get no case in the method.
type Method struct {
	Kind  MethodKind `yaml:"kind"`
	Name_ string     `yaml:"name"`
	Docs_ string     `yaml:"docs"`
	Skip  []string   `yaml:"skip"`
}

func (m Method) Name() (string, error) {
	if m.Name_ != "" {
		return m.Name_, nil
	}

	switch m.Kind {
	case MethodFromString:
		return "", fmt.Errorf("missing name for kind: %#v", MethodFromString)
	case MethodGoString:
		return "GoString", nil
	case MethodString:
		return "String", nil
	default:
		return "", fmt.Errorf("unexpected kind: %#v", m.Kind)
	}
}

func (m Method) Docs() string {
	if m.Docs_ != "" {
		return m.Docs_
	}

	switch m.Kind {
	case MethodGoString:
		return "GoString implements [fmt.GoStringer]."
	case MethodString:
		return "String implements [fmt.Stringer]."
	default:
		return ""
	}
}

// MethodKind selects the template for a [Method].
type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
)

//go:embed enum.go.tmpl
var tmplText string

// makeDocs turns YAML docs into comment lines at the given indent.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// Generate renders the enums described by the YAML in text.
func Generate(out *strings.Builder, pkg, config string, text []byte) error {
	var input struct {
		Binary, Package, Config string
		YAML                    []Enum
	}
	input.Package = pkg
	input.Config = filepath.Base(config)
	input.Binary = "github.com/bufbuild/exprcompile/internal/enum"
	if info, err := buildinfo.ReadFile(os.Args[0]); err == nil && info.Path != "" {
		input.Binary = info.Path
	}

	if err := yaml.Unmarshal(text, &input.YAML); err != nil {
		return err
	}
	for _, e := range input.YAML {
		if e.Name == "" || e.Type == "" {
			return errors.New("enum is missing a name or type")
		}
		seen := make(map[string]bool, len(e.Values_))
		for _, v := range e.Values_ {
			if seen[v.Name] {
				return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
			}
			seen[v.Name] = true
		}
		for _, m := range e.Methods {
			if _, err := m.Name(); err != nil {
				return fmt.Errorf("%s: %w", e.Name, err)
			}
		}
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
		"contains": slices.Contains[[]string],
	}).Parse(tmplText)
	if err != nil {
		return err
	}
	return tmpl.ExecuteTemplate(out, "enum.go.tmpl", input)
}

// generateFile turns kind.yaml into kind.go in the same directory.
func generateFile(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}

	var out strings.Builder
	if err := Generate(&out, os.Getenv("GOPACKAGE"), config, text); err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", []byte(out.String()), 0o644)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := generateFile(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
