// SPDX-License-Identifier: MIT

// Package cachematrix: functional configuration for the resolver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults + user options.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit output.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package cachematrix

import "github.com/jits/ProgrammingAssignment2/matrix"

// Solver is the signature of a matrix-inversion primitive: given a square
// invertible matrix it returns the inverse, or an error for singular or
// malformed input. Extra tuning parameters (tolerances, conditioning) are
// the supplier's business — curry them into the closure you pass to
// WithSolver.
type Solver func(matrix.Matrix) (matrix.Matrix, error)

// Event identifies an observable step inside ResolveInverse, reported
// through the trace hook (WithTrace).
//
//   - EventHit  — a cached inverse was returned without recomputation.
//   - EventMiss — no cached inverse existed; the solver was invoked and
//     its result stored.
type Event int

const (
	// EventHit: cache hit — the stored inverse is returned as-is.
	EventHit Event = iota

	// EventMiss: cache miss — the solver runs and fills the cache.
	EventMiss
)

// String returns a stable human-readable label for the event.
func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSolverNil = "cachematrix: WithSolver: solver must be non-nil"
	panicTraceNil  = "cachematrix: WithTrace: hook must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-fielded to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	solver Solver      // inversion primitive; default matrix.Inverse
	trace  func(Event) // diagnostic hook; default no-op
}

// ---------- Constructors (WithX) ----------

// WithSolver replaces the inversion primitive used on the compute path.
//
// This is the pass-through point for solver tuning: wrap the primitive of
// your choice with its parameters pre-applied and hand the closure in.
// Note that the solver is consulted only on cache misses — a hit returns the
// stored inverse regardless of which solver (or parameters) the current
// call carries.
//
// Panics with a stable message when fn is nil.
// Complexity: O(1).
func WithSolver(fn Solver) Option {
	if fn == nil {
		panic(panicSolverNil)
	}

	// Assign validated solver
	return func(o *Options) { o.solver = fn }
}

// WithTrace installs a hook invoked once per ResolveInverse call with the
// observed Event (EventHit or EventMiss). The hook is the package's only
// diagnostic output: there is no logging and no global state.
//
// Panics with a stable message when fn is nil.
// Complexity: O(1).
func WithTrace(fn func(Event)) Option {
	if fn == nil {
		panic(panicTraceNil)
	}

	// Assign validated hook
	return func(o *Options) { o.trace = fn }
}

// ---------- Internal resolution ----------

// gatherOptions builds the effective Options: documented defaults first,
// then user options applied in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		solver: matrix.Inverse,   // default inversion primitive
		trace:  func(Event) {},   // default: silent
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
