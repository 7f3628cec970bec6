// Package cachematrix memoizes matrix inversion: it wraps a square matrix
// together with an optionally cached inverse, so repeated requests for the
// inverse of the same matrix never pay the O(n³) computation twice.
//
// 🚀 What is cachematrix?
//
//	Inversion is among the most expensive dense-matrix operations. When the
//	same matrix is queried repeatedly — iterative solvers, covariance math,
//	preconditioning — recomputing A⁻¹ on every call is pure waste. This
//	package caches the inverse per matrix generation:
//	  • MatrixCache  — holds one matrix and at most one cached inverse
//	  • ResolveInverse — returns the inverse, computing it at most once
//	    per generation (a generation ends when SetMatrix replaces the matrix)
//
// ✨ Key properties:
//   - First ResolveInverse computes via matrix.Inverse and fills the cache
//   - Subsequent calls return the stored value — same object, zero work
//   - SetMatrix unconditionally clears the cache (next resolve recomputes)
//   - Singular/non-square input fails exactly as the underlying primitive
//     does (matrix.ErrSingular et al.) — no recovery at this layer
//   - Pluggable solver and an injectable trace hook via functional options
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/jits/ProgrammingAssignment2/cachematrix"
//	  "github.com/jits/ProgrammingAssignment2/matrix"
//	)
//
//	m, _ := matrix.FromRows([][]float64{{2, 0}, {0, 2}})
//	c := cachematrix.New(m)
//
//	inv, err := cachematrix.ResolveInverse(c) // computes and caches
//	inv, err = cachematrix.ResolveInverse(c)  // cache hit, same object
//
// Concurrency: none. A MatrixCache is a plain, unsynchronized container;
// the caller guarantees exclusive (or externally synchronized) access.
// Concurrent resolves on a cold cache would at worst duplicate work and
// race the Empty→Filled transition — do not share instances across
// goroutines without a lock of your own.
package cachematrix
