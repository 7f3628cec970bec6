// SPDX-License-Identifier: MIT

// Package cachematrix: the MatrixCache container and its accessor contract.
// This file holds ONLY the stateful wrapper; the resolver lives in
// cachematrix.go and configuration in options.go per the package conventions.
package cachematrix

import "github.com/jits/ProgrammingAssignment2/matrix"

// MatrixCache is a mutable container holding exactly one matrix value and at
// most one cached inverse.
//
// The inverse field doubles as the state marker: nil means Empty (no valid
// cached inverse), non-nil means Filled. The only invalidation rule is
// "SetMatrix clears the inverse" — the container cannot detect in-place
// mutation of the stored matrix that bypasses SetMatrix, so the
// inverse-matches-matrix invariant holds only when all replacement goes
// through the setter.
//
// MatrixCache is NOT safe for concurrent use; see the package documentation.
type MatrixCache struct {
	matrix  matrix.Matrix // current matrix generation (may be nil placeholder)
	inverse matrix.Matrix // cached inverse of matrix; nil ⇔ Empty
}

// New constructs a MatrixCache owning initial as its first matrix generation.
// The cache starts Empty (no inverse stored).
//
// A nil initial is permitted as an unspecified placeholder: the cache simply
// stays Empty-and-matrixless until SetMatrix supplies a real generation, and
// a premature ResolveInverse fails with the primitive's nil-input error.
// Complexity: O(1); the matrix is referenced, not copied.
func New(initial matrix.Matrix) *MatrixCache {
	return &MatrixCache{matrix: initial}
}

// SetMatrix replaces the stored matrix and unconditionally clears the cached
// inverse, starting a new generation.
//
// No shape validation is performed here — squareness and invertibility are
// the inversion primitive's contract, surfaced on the next resolve.
// Complexity: O(1).
func (c *MatrixCache) SetMatrix(m matrix.Matrix) {
	c.matrix = m
	c.inverse = nil // new generation: any cached inverse is stale by definition
}

// Matrix returns the currently stored matrix. No side effects.
// Complexity: O(1).
func (c *MatrixCache) Matrix() matrix.Matrix {
	return c.matrix
}

// SetInverse stores inv as the cached inverse of the current matrix.
//
// The value is trusted: no verification that inv actually inverts the stored
// matrix is performed. ResolveInverse is the intended writer; calling
// SetInverse directly with a wrong value silently poisons the cache for the
// remainder of the generation.
// Complexity: O(1).
func (c *MatrixCache) SetInverse(inv matrix.Matrix) {
	c.inverse = inv
}

// Inverse returns the cached inverse and whether one is present.
// (nil, false) means Empty: never computed, or cleared by SetMatrix.
// No computation is triggered here — use ResolveInverse for that.
// Complexity: O(1).
func (c *MatrixCache) Inverse() (matrix.Matrix, bool) {
	if c.inverse == nil {
		return nil, false
	}
	return c.inverse, true
}
