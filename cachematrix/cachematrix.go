// SPDX-License-Identifier: MIT
// Package cachematrix: the cache-aware inverse resolver.
//
// Purpose:
//   - Provide the single compute path of the package: consult the cache,
//     invoke the solver only on a miss, store the result before returning.
//
// Notes:
//   - Failures are wrapped with the operation tag via cacheErrorf, mirroring
//     the matrix package's kernel convention; sentinels stay errors.Is-able.

package cachematrix

import (
	"fmt"

	"github.com/jits/ProgrammingAssignment2/matrix"
)

// opResolveInverse tags errors produced by ResolveInverse.
const opResolveInverse = "ResolveInverse"

// cacheErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func cacheErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ResolveInverse returns the inverse of the cache's current matrix,
// computing it at most once per matrix generation.
//
// Implementation:
//   - Stage 1 (Hit): query c.Inverse(); when present, report EventHit through
//     the trace hook and return the stored value immediately — same object,
//     no recomputation, no validation.
//   - Stage 2 (Miss): report EventMiss, read c.Matrix(), run the configured
//     solver (default matrix.Inverse), store the result via c.SetInverse and
//     return it.
//
// Behavior highlights:
//   - Options are consulted only on the compute path. A cache hit returns
//     the stored inverse even if this call carries a different solver than
//     the one that filled the cache; parameter mismatch across calls within
//     one generation is deliberately ignored.
//   - Solver failure (singular matrix, non-square or nil input) propagates
//     to the caller wrapped only with the operation tag: match the
//     primitive's sentinels with errors.Is (e.g. matrix.ErrSingular). The
//     cache is left untouched on failure — still Empty, next call retries.
//
// Errors:
//   - matrix.ErrNilMatrix (nil cache, or nil/placeholder matrix reaching the
//     default solver), matrix.ErrSingular, matrix.ErrDimensionMismatch —
//     whatever the solver surfaces, plus ErrNilMatrix for a nil *MatrixCache.
//
// Determinism:
//   - Hit path is read-only aside from the trace call; miss path performs
//     exactly one solver invocation and one SetInverse.
//
// Complexity:
//   - Hit O(1); miss O(cost of solver) — O(n³) for the default primitive.
func ResolveInverse(c *MatrixCache, opts ...Option) (matrix.Matrix, error) {
	// Guard the container itself; everything past here may touch its fields.
	if c == nil {
		return nil, cacheErrorf(opResolveInverse, matrix.ErrNilMatrix)
	}

	// Resolve effective configuration (defaults + user options, in order).
	o := gatherOptions(opts...)

	// Stage 1: serve from cache when a valid inverse exists.
	if inv, ok := c.Inverse(); ok {
		o.trace(EventHit) // the observable "getting cached data" signal
		return inv, nil
	}

	// Stage 2: compute once for this generation and fill the cache.
	o.trace(EventMiss)
	inv, err := o.solver(c.Matrix())
	if err != nil {
		// Fail-fast: no recovery, no retry, cache stays Empty.
		return nil, cacheErrorf(opResolveInverse, err)
	}
	c.SetInverse(inv)

	return inv, nil
}
