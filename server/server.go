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

// Package server exposes scanning, parsing and DOT rendering over HTTP.
//
// Every endpoint but /healthz takes a POST with a JSON body of the form
// {"source": "..."}:
//
//	POST /tokenize   -> {"tokens": [...]}
//	POST /parse      -> {"ast": {...}}
//	                    {"ast": {...}, "path": [...]} with an "offset"
//	POST /visualize  -> {"dot": "digraph AST {..."}
//	GET  /healthz    -> ok
//
// Scan and parse failures are answered with 400 and an error object that
// names the error kind and its position.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"

	"github.com/bufbuild/exprcompile"
	"github.com/bufbuild/exprcompile/ast"
	"github.com/bufbuild/exprcompile/dot"
	"github.com/bufbuild/exprcompile/internal/config"
	"github.com/bufbuild/exprcompile/parser"
	"github.com/bufbuild/exprcompile/report"
	"github.com/bufbuild/exprcompile/reporter"
	"github.com/bufbuild/exprcompile/scanner"
	"github.com/bufbuild/exprcompile/token"
)

// The path diagnostics use for request sources.
const sourcePath = "<request>"

// Server is the HTTP handler for the service.
type Server struct {
	logger slog.Logger
	router chi.Router
}

// New returns a server configured by cfg. A nil log discards logs.
func New(cfg config.Server, log slog.Logger) *Server {
	if log == nil {
		log = logger.NewNopLogger()
	}
	s := &Server{logger: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(cfg.MaxBodyBytes))
		r.Post("/tokenize", s.tokenize)
		r.Post("/parse", s.parse)
		r.Post("/visualize", s.visualize)
	})

	s.router = r
	return s
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.Addr until ctx is done, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, cfg config.Server, log slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      New(cfg, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	if log != nil {
		log.Infof("serving on %s", cfg.Addr)
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type request struct {
	Source string `json:"source"`
	// For /parse, a byte offset whose enclosing nodes are also returned.
	Offset *int   `json:"offset,omitempty"`
}

// pathNode describes one node enclosing a requested offset.
type pathNode struct {
	Kind  string   `json:"kind"`
	Label string   `json:"label"`
	Span  ast.Span `json:"span"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Offset     int    `json:"offset"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

func (s *Server) tokenize(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	src := req.Source
	toks, err := scanner.TokenizeAll(src, scanner.WithLogger(s.logger))
	if err != nil {
		s.sourceError(w, src, err)
		return
	}
	s.write(w, http.StatusOK, struct {
		Tokens []token.Token `json:"tokens"`
	}{toks})
}

func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	src := req.Source
	prog, err := parser.Parse(src, parser.WithLogger(s.logger))
	if err != nil {
		s.sourceError(w, src, err)
		return
	}
	resp := struct {
		AST  any         `json:"ast"`
		Path *[]pathNode `json:"path,omitempty"`
	}{AST: prog}
	if req.Offset != nil {
		path := []pathNode{}
		for _, n := range ast.NewIndex(prog).Path(*req.Offset) {
			path = append(path, pathNode{Kind: n.Kind().String(), Label: n.Label(), Span: n.Span()})
		}
		resp.Path = &path
	}
	s.write(w, http.StatusOK, resp)
}

func (s *Server) visualize(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	src := req.Source
	prog, err := parser.Parse(src, parser.WithLogger(s.logger))
	if err != nil {
		s.sourceError(w, src, err)
		return
	}
	s.write(w, http.StatusOK, struct {
		Dot string `json:"dot"`
	}{dot.Render(prog)})
}

// decode reads the request body. On failure it writes the response and
// returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (request, bool) {
	var req request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.write(w, http.StatusRequestEntityTooLarge, errorBody{errorDetail{
				Kind:    "RequestTooLarge",
				Message: err.Error(),
			}})
			return request{}, false
		}
		s.write(w, http.StatusBadRequest, errorBody{errorDetail{
			Kind:    "BadRequest",
			Message: err.Error(),
		}})
		return request{}, false
	}
	return req, true
}

// sourceError answers with a description of a scan or parse failure.
func (s *Server) sourceError(w http.ResponseWriter, src string, err error) {
	var r report.Report
	exprcompile.Diagnose(&r, report.NewIndexedFile(report.File{Path: sourcePath, Text: src}), err)

	detail := errorDetail{
		Kind:       exprcompile.ErrorKind(err),
		Message:    err.Error(),
		Diagnostic: strings.TrimSuffix(r.Render(report.Simple), "\n"),
	}
	if pos, ok := reporter.PositionOf(err); ok && pos.IsValid() {
		detail.Line, detail.Column, detail.Offset = pos.Line, pos.Column, pos.Offset
	}
	s.write(w, http.StatusBadRequest, errorBody{detail})
}

func (s *Server) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Errorf("writing response: %v", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Infof("%s %s %s %d %dB %v",
			middleware.GetReqID(r.Context()), r.Method, r.URL.Path,
			ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}
