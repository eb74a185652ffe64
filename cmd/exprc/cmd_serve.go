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
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bufbuild/exprcompile/server"
)

type serveEnv struct {
	*rootEnv
	addr string
}

// getServeCmd returns the definition of the serve command.
func getServeCmd(root *rootEnv) *cobra.Command {
	env := &serveEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tokenize, parse and visualize endpoints over HTTP.",
		Args:  cobra.NoArgs,
		RunE:  env.runServeCmd,
	}
	cmd.Flags().StringVar(&env.addr, "addr", "", "Address to listen on (default from config)")
	return cmd
}

func (s *serveEnv) runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg := s.cfg.Server
	if s.addr != "" {
		cfg.Addr = s.addr
	}
	err := server.ListenAndServe(cmd.Context(), cfg, s.log)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
