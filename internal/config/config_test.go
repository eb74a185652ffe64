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

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/exprcompile/report"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "auto", cfg.Report.Style)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Check.Parallelism)
	assert.False(t, cfg.Log.Debug)

	assert.Equal(t, report.Colored, cfg.ReportStyle(true))
	assert.Equal(t, report.Monochrome, cfg.ReportStyle(false))
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
server:
  addr: 127.0.0.1:9000
  read_timeout: 2s
  max_body_bytes: 4096
report:
  style: simple
check:
  parallelism: 3
log:
  debug: true
`))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(4096), cfg.Server.MaxBodyBytes)
	assert.Equal(t, report.Simple, cfg.ReportStyle(true))
	assert.Equal(t, 3, cfg.Check.Parallelism)
	assert.True(t, cfg.Log.Debug)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"server:\n  port: 80\n",
		"report:\n  style: loud\n",
		"check:\n  parallelism: -1\n",
		"server:\n  read_timeout: soon\n",
		"server: [1, 2]\n",
	} {
		_, err := Parse([]byte(text))
		assert.Error(t, err, text)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "exprc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  debug: true\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
