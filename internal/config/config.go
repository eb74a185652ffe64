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

// Package config loads the settings shared by the command line tool and the
// server from YAML.
//
// A complete file looks like this; every field is optional:
//
//	server:
//	  addr: ":8080"
//	  read_timeout: 10s
//	  write_timeout: 10s
//	  max_body_bytes: 1048576
//	report:
//	  style: auto  # simple, monochrome, colored or auto
//	check:
//	  parallelism: 8
//	log:
//	  debug: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/exprcompile/report"
)

// Defaults for unset fields.
const (
	DefaultAddr         = ":8080"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBodyBytes = 1 << 20
	DefaultStyle        = "auto"
)

// Config is the root of a configuration file.
type Config struct {
	Server Server `yaml:"server"`
	Report Report `yaml:"report"`
	Check  Check  `yaml:"check"`
	Log    Log    `yaml:"log"`
}

// Server configures the HTTP service.
type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// Requests with larger bodies are rejected.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// Report configures how diagnostics are rendered.
type Report struct {
	Style string `yaml:"style"`
}

// Check configures multi-file checking.
type Check struct {
	// How many files are parsed at once.
	Parallelism int `yaml:"parallelism"`
}

// Log configures logging.
type Log struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	cfg := new(Config)
	_ = cfg.normalize()
	return cfg
}

// Load reads the configuration at path. An empty path yields [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses a configuration file. Unknown fields are an error.
func Parse(data []byte) (*Config, error) {
	cfg := new(Config)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReportStyle returns the configured report style. tty says whether the
// output is a terminal, which decides the "auto" style.
func (c *Config) ReportStyle(tty bool) report.Style {
	// normalize already rejected unknown names.
	style, _ := report.ParseStyle(c.Report.Style, tty)
	return style
}

// normalize fills in defaults and validates the result.
func (c *Config) normalize() error {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultTimeout
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Report.Style == "" {
		c.Report.Style = DefaultStyle
	}
	if c.Check.Parallelism == 0 {
		c.Check.Parallelism = runtime.GOMAXPROCS(0)
	}

	switch {
	case c.Server.ReadTimeout < 0, c.Server.WriteTimeout < 0:
		return errors.New("server timeouts must not be negative")
	case c.Server.MaxBodyBytes < 0:
		return errors.New("server.max_body_bytes must not be negative")
	case c.Check.Parallelism < 0:
		return errors.New("check.parallelism must not be negative")
	}
	if _, err := report.ParseStyle(c.Report.Style, false); err != nil {
		return fmt.Errorf("report.style: %w", err)
	}
	return nil
}
