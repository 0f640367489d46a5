// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plp

import (
	"log/slog"
	"os"

	"github.com/ajroetker/go-plp/plp/cluster"
)

// Env is the execution context of a call: which site issues it, which
// cluster parallel work runs on, and how diagnostics are reported.
//
// An Env is read-only once built and may be shared across goroutines.
type Env struct {
	Site    Site
	Cluster *cluster.Cluster // nil is fine for SiteControl
	Config  Config
	Logger  *slog.Logger
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithConfig sets the Env configuration.
func WithConfig(cfg Config) EnvOption {
	return func(e *Env) {
		e.Config = cfg
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) EnvOption {
	return func(e *Env) {
		e.Logger = l
	}
}

// NewEnv returns an Env for site backed by cl, using DefaultConfig and a
// text logger on stdout unless overridden.
func NewEnv(site Site, cl *cluster.Cluster, opts ...EnvOption) *Env {
	e := &Env{
		Site:    site,
		Cluster: cl,
		Config:  DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Variant returns the kernel variant for this Env's site, honoring
// Config.NoSIMD.
func (e *Env) Variant() Variant {
	if e.Config.NoSIMD {
		return VariantScalar
	}
	return Resolve(e.Site)
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func (e *Env) log() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return defaultLogger
}
