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

package exprcompile

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/parser"
	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/scanner"
	"github.com/bufbuild/exprcompile/token"
)

// Compiler parses many source files at once.
type Compiler struct {
	// Resolves paths into source text. This field is required.
	Resolver Resolver
	// The maximum number of files parsed concurrently. If non-positive,
	// runtime.GOMAXPROCS(0) is used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified, compilation fails
	// at the first error and warnings are ignored.
	Reporter reporter.Reporter
	// Receives progress messages. If nil, nothing is logged.
	Logger slog.Logger
}

// Result is the outcome of compiling a single file.
type Result struct {
	Path string
	// The source text, if it was read.
	Text    string
	Program *ast.Program

	// The file's parse failure, when the reporter chose to continue past
	// it. Always a *[FileError].
	Err error
}

// Compile parses the files at the given paths, returning one [Result] per
// path, in order.
//
// Every resolve, read and parse error is passed to the reporter. If the
// reporter returns an error, the remaining work is cancelled and that error
// is returned. Otherwise, compilation carries on, each failure is recorded on
// its file's [Result], and the returned error wraps
// [reporter.ErrInvalidSource] together with a go-multierror aggregate of the
// failures.
func (c *Compiler) Compile(ctx context.Context, paths ...string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	log := c.Logger
	if log == nil {
		log = logger.NewNopLogger()
	}
	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	h := reporter.NewHandler(c.Reporter)
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(par)
	for i, path := range paths {
		results[i].Path = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.compile(&results[i], h, log)
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	// The reporter swallowed every error it saw, if any.
	if err := h.Error(); err != nil {
		var errs *multierror.Error
		for _, res := range results {
			if res.Err != nil {
				errs = multierror.Append(errs, res.Err)
			}
		}
		if errs == nil {
			return results, err
		}
		log.Infof("%d of %d files failed", errs.Len(), len(paths))
		return results, fmt.Errorf("%w: %w", err, errs)
	}
	return results, nil
}

func (c *Compiler) compile(res *Result, h *reporter.Handler, log slog.Logger) error {
	sr, err := c.Resolver.FindFileByPath(res.Path)
	if err != nil {
		return fail(res, h, &FileError{Path: res.Path, Err: err})
	}
	if sr.AST != nil {
		res.Program = sr.AST
		return nil
	}
	if sr.Source == nil {
		return fail(res, h, &FileError{Path: res.Path, Err: ErrNotFound})
	}
	if closer, ok := sr.Source.(io.Closer); ok {
		defer closer.Close()
	}

	data, err := io.ReadAll(sr.Source)
	if err != nil {
		return fail(res, h, &FileError{Path: res.Path, Err: &scanner.IOFailureError{Err: err}})
	}
	res.Text = string(data)

	prog, err := parser.Parse(res.Text, parser.WithLogger(log))
	if err != nil {
		log.Debugf("%s: %v", res.Path, err)
		return fail(res, h, &FileError{Path: res.Path, Err: err})
	}

	if len(prog.Statements) == 0 {
		h.HandleWarning(&FileError{Path: res.Path, Pos: prog.Source.Start, Err: ErrEmptyFile})
	}
	res.Program = prog
	log.Debugf("%s: %d statements", res.Path, len(prog.Statements))
	return nil
}

// fail passes ferr to the reporter. If the reporter lets compilation carry
// on, ferr is recorded on res instead.
func fail(res *Result, h *reporter.Handler, ferr *FileError) error {
	if err := h.HandleError(ferr); err != nil {
		return err
	}
	res.Err = ferr
	return nil
}

// FileError is an error about a particular file.
type FileError struct {
	Path string
	// Where in the file the error occurred. If unset, the position of Err
	// is used.
	Pos token.Position
	Err error
}

func (e *FileError) Error() string {
	if pos := e.GetPosition(); pos.IsValid() {
		return fmt.Sprintf("%s:%v: %v", e.Path, pos, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// GetPosition implements [reporter.ErrorWithPos].
func (e *FileError) GetPosition() token.Position {
	if e.Pos.IsValid() {
		return e.Pos
	}
	pos, _ := reporter.PositionOf(e.Err)
	return pos
}

func (e *FileError) Unwrap() error { return e.Err }

var _ reporter.ErrorWithPos = (*FileError)(nil)
