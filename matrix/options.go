// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorizations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves per-call defaults.
//
// Notes:
//   - Each algorithm has its own default tolerance: LU treats a pivot as zero
//     below DefaultPivotEpsilon, RREF and Rank below DefaultRankEpsilon.
//     WithEpsilon overrides whichever default applies to the call.
//   - The default logger discards everything; pass WithLogger to observe pivot
//     swaps and skipped columns at slog.LevelDebug.
package matrix

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults ----------

const (
	// DefaultPivotEpsilon is the LU zero-pivot threshold: float64 machine
	// epsilon (2^-52).
	DefaultPivotEpsilon = 0x1p-52

	// DefaultRankEpsilon is the RREF/Rank zero threshold.
	DefaultRankEpsilon = 1e-12

	// DefaultPivoting enables row exchanges in LU.
	DefaultPivoting = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil      = "matrix: WithLogger: logger must be non-nil"
)

// discardLogger is shared by every call that does not set a logger.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option mutates internal options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64 // >= 0; per-algorithm default unless WithEpsilon
	pivoting bool    // DefaultPivoting
	logger   *slog.Logger
}

// WithEpsilon sets the zero threshold used for pivot detection.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivoting toggles LU row exchanges. With pivoting off the candidate in
// column k is always row k and P stays the identity.
func WithPivoting(on bool) Option {
	return func(o *Options) { o.pivoting = on }
}

// WithLogger routes algorithm trace records (pivot swaps, skipped columns)
// to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters over the defaults; defaultEps is the
// calling algorithm's own tolerance, used unless WithEpsilon was given.
func gatherOptions(defaultEps float64, user ...Option) Options {
	o := Options{
		eps:      defaultEps,
		pivoting: DefaultPivoting,
		logger:   discardLogger,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
