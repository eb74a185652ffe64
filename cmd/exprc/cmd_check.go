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
	"fmt"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bufbuild/exprcompile"
	"github.com/bufbuild/exprcompile/report"
	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/token"
)

type checkEnv struct {
	*rootEnv
	parallelism int
}

// getCheckCmd returns the definition of the check command.
func getCheckCmd(root *rootEnv) *cobra.Command {
	env := &checkEnv{rootEnv: root}
	cmd := &cobra.Command{
		Use:   "check <pattern>...",
		Short: "Parse many files and report every problem found.",
		Long: `
Parse every file matching the given patterns, which may use ** to match any
number of directories. Each file that fails to parse is reported; empty
files produce a warning.`,
		Args: cobra.MinimumNArgs(1),
		RunE: env.runCheckCmd,
	}
	cmd.Flags().IntVar(&env.parallelism, "parallelism", 0, "How many files to parse at once (default from config)")
	return cmd
}

func (c *checkEnv) runCheckCmd(cmd *cobra.Command, args []string) error {
	paths, err := expandPatterns(args)
	if err != nil {
		return err
	}

	par := c.cfg.Check.Parallelism
	if c.parallelism > 0 {
		par = c.parallelism
	}

	var col collector
	compiler := &exprcompile.Compiler{
		Resolver:       &exprcompile.SourceResolver{},
		MaxParallelism: par,
		Reporter:       reporter.NewReporter(col.error, col.warning),
		Logger:         c.log,
	}
	results, err := compiler.Compile(cmd.Context(), paths...)
	if err != nil && len(col.errs) == 0 {
		return err
	}
	c.log.Infof("checked %d files", len(paths))

	texts := make(map[string]string, len(results))
	for _, res := range results {
		texts[res.Path] = res.Text
	}
	var rep report.Report
	for _, diag := range col.sorted() {
		path := ""
		var ferr *exprcompile.FileError
		if errors.As(diag, &ferr) {
			path = ferr.Path
		}
		file := report.NewIndexedFile(report.File{Path: path, Text: texts[path]})
		exprcompile.Diagnose(&rep, file, diag)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, rep.Render(c.reportStyle(out)))
	if rep.Errors() > 0 {
		return errReported
	}
	return nil
}

// expandPatterns returns the files matching patterns, sorted and without
// duplicates.
func expandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "bad pattern %q", pattern)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

// collector records everything reported during a check. Errors never stop
// the check.
type collector struct {
	mu   sync.Mutex
	errs []reporter.ErrorWithPos
}

func (c *collector) error(err reporter.ErrorWithPos) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
	return nil
}

func (c *collector) warning(err reporter.ErrorWithPos) {
	_ = c.error(err)
}

// sorted returns the reports in file order, since files are parsed
// concurrently.
func (c *collector) sorted() []reporter.ErrorWithPos {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := slices.Clone(c.errs)
	slices.SortStableFunc(out, func(a, b reporter.ErrorWithPos) int {
		if pa, pb := pathOf(a), pathOf(b); pa != pb {
			if pa < pb {
				return -1
			}
			return 1
		}
		return comparePos(a.GetPosition(), b.GetPosition())
	})
	return out
}

func pathOf(err error) string {
	var ferr *exprcompile.FileError
	if errors.As(err, &ferr) {
		return ferr.Path
	}
	return ""
}

func comparePos(a, b token.Position) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
