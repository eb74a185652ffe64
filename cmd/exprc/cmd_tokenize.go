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

	"github.com/spf13/cobra"

	"github.com/bufbuild/exprcompile/scanner"
)

type tokenizeEnv struct {
	*rootEnv
	json bool
}

// getTokenizeCmd returns the definition of the tokenize command.
func getTokenizeCmd(root *rootEnv) *cobra.Command {
	env := &tokenizeEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Print the tokens of a file, one per line.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  env.runTokenizeCmd,
	}
	cmd.Flags().BoolVar(&env.json, "json", false, "Print the tokens as a JSON array")
	return cmd
}

func (t *tokenizeEnv) runTokenizeCmd(cmd *cobra.Command, args []string) error {
	name, text, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	toks, err := scanner.TokenizeAll(text, scanner.WithLogger(t.log))
	if err != nil {
		return t.diagnose(cmd, name, text, err)
	}

	out := cmd.OutOrStdout()
	if t.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	}
	for _, tok := range toks {
		fmt.Fprintf(out, "%v\t%v\n", tok.Pos, tok)
	}
	return nil
}
