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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/parser"
)

type parseEnv struct {
	*rootEnv
	format string
	at     int
}

// getParseCmd returns the definition of the parse command.
func getParseCmd(root *rootEnv) *cobra.Command {
	env := &parseEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of a file.",
		Long: `
Print the syntax tree of a file. The tree format indents each node under its
parent; the json and yaml formats include every node's span. With --at, print
instead the chain of nodes enclosing a byte offset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: env.runParseCmd,
	}
	cmd.Flags().StringVar(&env.format, "format", "tree", "Output format: tree, json or yaml")
	cmd.Flags().IntVar(&env.at, "at", -1, "Print only the nodes enclosing this byte offset, outermost first")
	return cmd
}

func (p *parseEnv) runParseCmd(cmd *cobra.Command, args []string) error {
	switch p.format {
	case "tree", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", p.format)
	}

	name, text, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(text, parser.WithLogger(p.log))
	if err != nil {
		return p.diagnose(cmd, name, text, err)
	}
	if p.at >= 0 {
		return writePath(cmd.OutOrStdout(), prog, p.at)
	}
	return writeProgram(cmd.OutOrStdout(), prog, p.format)
}

// writePath prints the nodes whose spans contain offset, one per line.
func writePath(w io.Writer, prog *ast.Program, offset int) error {
	path := ast.NewIndex(prog).Path(offset)
	if len(path) == 0 {
		return fmt.Errorf("no node at offset %d", offset)
	}
	for _, n := range path {
		span := n.Span()
		label := strings.ReplaceAll(n.Label(), "\n", " ")
		if _, err := fmt.Fprintf(w, "%v-%v\t%s\n", span.Start, span.End, label); err != nil {
			return err
		}
	}
	return nil
}

func writeProgram(w io.Writer, prog *ast.Program, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prog)
	case "yaml":
		// Go through JSON so both formats share one schema.
		data, err := json.Marshal(prog)
		if err != nil {
			return err
		}
		var tree any
		if err := json.Unmarshal(data, &tree); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, ast.Sprint(prog))
		return err
	}
}
