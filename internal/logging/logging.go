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

// Package logging constructs the leveled loggers used by the command line
// tool and the server.
package logging

import (
	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
)

// New returns a logger that writes to dst, such as os.Stderr. Debug
// messages are only written if debug is set.
func New(dst logger.SyncWriter, debug bool) slog.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   dst,
		IncludeDebug: debug,
	})
}

// Nop returns a logger that discards everything.
func Nop() slog.Logger {
	return logger.NewNopLogger()
}
