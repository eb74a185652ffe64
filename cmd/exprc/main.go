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

// Command exprc scans, parses and checks expression source files.
//
//	exprc tokenize calc.expr
//	exprc parse --format json calc.expr
//	exprc dot -o calc.dot calc.expr
//	exprc check 'src/**/*.expr'
//	exprc serve --addr :9090
//
// Commands that take a single file read standard input when the file is
// omitted or is "-".
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/mattn/go-isatty"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bufbuild/exprcompile"
	"github.com/bufbuild/exprcompile/internal/config"
	"github.com/bufbuild/exprcompile/internal/logging"
	"github.com/bufbuild/exprcompile/report"
)

// errReported is returned by commands that have already printed their
// diagnostics. It only sets the exit status.
var errReported = errors.New("errors were reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		os.Exit(1)
	}
}

// rootEnv holds the settings shared by every command.
type rootEnv struct {
	configPath string
	debug      bool
	style      string

	cfg *config.Config
	log slog.Logger
}

func newRootCmd() *cobra.Command {
	env := &rootEnv{}
	cmd := &cobra.Command{
		Use:           "exprc",
		Short:         "Scan, parse and check expression source files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.load(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&env.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&env.debug, "debug", false, "Log debug messages")
	cmd.PersistentFlags().StringVar(&env.style, "style", "", "Diagnostic style: simple, monochrome, colored or auto")

	cmd.AddCommand(
		getTokenizeCmd(env),
		getParseCmd(env),
		getDotCmd(env),
		getCheckCmd(env),
		getServeCmd(env),
	)

	return cmd
}

// load reads the configuration and applies the flags over it.
func (r *rootEnv) load(cmd *cobra.Command) error {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return pkgerrors.Wrap(err, "loading configuration")
	}
	if r.style != "" {
		if _, err := report.ParseStyle(r.style, false); err != nil {
			return err
		}
		cfg.Report.Style = r.style
	}
	if r.debug {
		cfg.Log.Debug = true
	}
	r.cfg = cfg
	r.log = logging.New(syncWriter(cmd.ErrOrStderr()), cfg.Log.Debug)
	return nil
}

// reportStyle returns the style for diagnostics written to w.
func (r *rootEnv) reportStyle(w io.Writer) report.Style {
	return r.cfg.ReportStyle(isTerminal(w))
}

// diagnose prints a diagnostic for err, a failure to scan or parse text,
// and returns errReported.
func (r *rootEnv) diagnose(cmd *cobra.Command, name, text string, err error) error {
	var rep report.Report
	exprcompile.Diagnose(&rep, report.NewIndexedFile(report.File{Path: name, Text: text}), err)
	out := cmd.ErrOrStderr()
	fmt.Fprint(out, rep.Render(r.reportStyle(out)))
	return errReported
}

// readSource reads the file named by args, or standard input.
func readSource(cmd *cobra.Command, args []string) (name, text string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", pkgerrors.Wrap(err, "reading standard input")
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", pkgerrors.Wrapf(err, "reading %s", args[0])
	}
	return args[0], string(data), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopSyncer struct{ io.Writer }

func (nopSyncer) Sync() error { return nil }

func syncWriter(w io.Writer) logger.SyncWriter {
	if sw, ok := w.(logger.SyncWriter); ok {
		return sw
	}
	return nopSyncer{w}
}
