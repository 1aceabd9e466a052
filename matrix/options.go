// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the per-matrix numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a final policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The policy travels with a *Dense: Clone, Take, MoveFrom and every kernel
//     whose left operand is a *Dense carry it over to the result.
//   - eps drives Equal; singularTol drives Inverse; validateNaNInf drives
//     Set/Fill/Scale rejection of non-finite values.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Equal: two elements
	// are equal when |a-b| ≤ DefaultEpsilon.
	DefaultEpsilon = 1e-7

	// DefaultSingularTolerance is the threshold below which |det| is treated
	// as zero by Inverse. Zero keeps the exact-comparison behavior.
	DefaultSingularTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// Fill and scalar multiplication.
	DefaultValidateNaNInf = true
)

// DefaultRows and DefaultCols give the shape produced by NewDefault.
const (
	DefaultRows = 3
	DefaultCols = 3
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularTolInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	singularTol    float64 // >= 0; DefaultSingularTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the resolved equality tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SingularTolerance reports the resolved singularity threshold.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the absolute tolerance eps used by Equal.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - eps=0 turns Equal into exact element comparison.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularTolerance makes Inverse treat |det| ≤ tol as singular.
// The default (0) accepts every matrix whose determinant is not exactly zero,
// including near-singular ones whose inverse is numerically meaningless.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithValidateNaNInf enables rejection of NaN/±Inf on writes.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables rejection of NaN/±Inf on writes.
// Use only for controlled ingestion; Equal and Determinant propagate NaN.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults and returns the
// effective configuration. Useful for inspection in tests and callers.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		singularTol:    DefaultSingularTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters are applied in order (last-writer-wins); nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
