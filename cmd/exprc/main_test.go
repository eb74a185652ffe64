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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, text string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "x = 1", "tokenize")
	require.NoError(t, err)
	assert.Equal(t, "1:1\tIdent(x)\n1:3\tOperator(\"=\")\n1:5\tNumber(1 Integer)\n1:6\tEOF\n", stdout)

	stdout, _, err = run(t, "(a)", "tokenize", "--json", "-")
	require.NoError(t, err)
	var toks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &toks))
	require.Len(t, toks, 4)
	assert.Equal(t, "Punct", toks[0]["kind"])
}

func TestTokenizeFailure(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "a ]", "tokenize", "--style", "simple")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "error: <stdin>:1:3: unmatched closing ']': no open '[' remaining\n", stderr)
}

func TestParseFormats(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "1 + x", "parse")
	require.NoError(t, err)
	assert.Equal(t, `Program
  stmt0: ExpressionStatement
    expr: BinaryOp +
      left: Number 1 (int)
      right: Identifier x
`, stdout)

	stdout, _, err = run(t, "1 + x", "parse", "--format", "json")
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &fromJSON))
	assert.Equal(t, "Program", fromJSON["kind"])

	stdout, _, err = run(t, "1 + x", "parse", "--format", "yaml")
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &fromYAML))
	assert.Equal(t, "Program", fromYAML["kind"])
	assert.Len(t, fromYAML["statements"], 1)

	_, _, err = run(t, "1", "parse", "--format", "xml")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestParseAt(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "x = f(ab, 2)", "parse", "--at", "7")
	require.NoError(t, err)
	assert.Equal(t, `1:1-1:13	Program
1:1-1:13	ExpressionStatement
1:1-1:13	Assignment =
1:5-1:13	FunctionCall f
1:7-1:9	Identifier ab
`, stdout)

	_, _, err = run(t, "x", "parse", "--at", "5")
	require.ErrorContains(t, err, "no node at offset 5")
}

func TestParseFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.expr")
	writeFile(t, path, "f(1")

	_, stderr, err := run(t, "", "parse", "--style", "monochrome", path)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "error: unexpected token: expected closing parenthesis, found EOF\n")
	assert.Contains(t, stderr, " 1 | f(1\n")
	assert.Contains(t, stderr, "encountered 1 error\n")
}

func TestDot(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "f(1)", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "digraph AST {\n"), stdout)

	out := filepath.Join(t.TempDir(), "f.dot")
	stdout, _, err = run(t, "f(1)", "dot", "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "FunctionCall")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.expr"), "x = 1")
	writeFile(t, filepath.Join(dir, "b.expr"), "f(1")
	writeFile(t, filepath.Join(dir, "sub", "c.expr"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "(")

	stdout, _, err := run(t, "", "check", "--style", "simple", filepath.Join(dir, "**", "*.expr"))
	require.ErrorIs(t, err, errReported)
	assert.Equal(t,
		"error: "+filepath.Join(dir, "b.expr")+":1:4: unexpected token: expected closing parenthesis, found EOF\n"+
			"warning: "+filepath.Join(dir, "sub", "c.expr")+":1:1: file contains no statements\n",
		stdout)

	stdout, _, err = run(t, "", "check", "--style", "simple", filepath.Join(dir, "a.expr"), filepath.Join(dir, "sub", "*.expr"))
	require.NoError(t, err)
	assert.Equal(t, "warning: "+filepath.Join(dir, "sub", "c.expr")+":1:1: file contains no statements\n", stdout)

	_, _, err = run(t, "", "check", filepath.Join(dir, "*.none"))
	require.ErrorContains(t, err, "no files match")
}

func TestConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "exprc.yaml")
	writeFile(t, path, "report:\n  style: simple\n")

	_, stderr, err := run(t, "@", "tokenize", "--config", path)
	require.ErrorIs(t, err, errReported)
	assert.True(t, strings.HasPrefix(stderr, "error: <stdin>:"), stderr)

	writeFile(t, path, "report:\n  colour: red\n")
	_, _, err = run(t, "", "tokenize", "--config", path)
	require.ErrorContains(t, err, "loading configuration")

	_, _, err = run(t, "", "tokenize", "--style", "loud")
	require.ErrorContains(t, err, `unknown report style "loud"`)
}
