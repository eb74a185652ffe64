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
	"os"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bufbuild/exprcompile/dot"
	"github.com/bufbuild/exprcompile/parser"
)

type dotEnv struct {
	*rootEnv
	output string
}

// getDotCmd returns the definition of the dot command.
func getDotCmd(root *rootEnv) *cobra.Command {
	env := &dotEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Render the syntax tree of a file as a Graphviz digraph.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  env.runDotCmd,
	}
	cmd.Flags().StringVarP(&env.output, "output", "o", "", "Write to this file instead of standard output")
	return cmd
}

func (d *dotEnv) runDotCmd(cmd *cobra.Command, args []string) error {
	name, text, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(text, parser.WithLogger(d.log))
	if err != nil {
		return d.diagnose(cmd, name, text, err)
	}

	if d.output == "" {
		return dot.Write(cmd.OutOrStdout(), prog)
	}
	if err := os.WriteFile(d.output, []byte(dot.Render(prog)), 0o644); err != nil {
		return pkgerrors.Wrapf(err, "writing %s", d.output)
	}
	d.log.Debugf("wrote %s", d.output)
	return nil
}
