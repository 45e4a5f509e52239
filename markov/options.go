// SPDX-License-Identifier: MIT

// Package markov: functional configuration for the solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options never change the numeric result of a solve; they only control
// diagnostics and the post-solve self check.
package markov

import (
	"io"
	"log/slog"
)

// DefaultVerify enables the Σ numerators == denominator self check after
// normalization.
const DefaultVerify = true

const panicNilLogger = "markov: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds resolved solver configuration. Fields are unexported; use
// the WithX constructors.
type Options struct {
	logger *slog.Logger
	verify bool
}

// discardLogger drops every record. Built once; slog loggers are safe for
// concurrent use.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// defaultOptions returns the zero-configuration baseline.
func defaultOptions() Options {
	return Options{
		logger: discardLogger,
		verify: DefaultVerify,
	}
}

// gatherOptions applies opts on top of the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger routes debug records about solver stages to l.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithVerify toggles the post-solve check that the normalized numerators sum
// to the common denominator.
func WithVerify(on bool) Option {
	return func(o *Options) { o.verify = on }
}
