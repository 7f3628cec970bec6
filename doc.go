// Package cachedmatrix is the module-level overview for a small library
// that memoizes matrix inversion.
//
// 🚀 What is this module?
//
//	A two-package library for paying the O(n³) cost of matrix inversion at
//	most once per matrix:
//	  • matrix/      — dense numeric core: row-major Dense storage, the
//	    deterministic LU/Inverse kernels, Mul and AllClose
//	  • cachematrix/ — MatrixCache (one matrix, at most one cached inverse)
//	    and ResolveInverse (consults the cache before computing)
//
// ✨ Why cache an inverse?
//
//   - Compute once, read many — repeated resolves return the same object
//   - Explicit invalidation — replacing the matrix starts a new generation
//   - Fail-fast numerics — singular input surfaces matrix.ErrSingular,
//     matchable via errors.Is, with no recovery magic in between
//   - Pure Go — no cgo, no hidden deps
//
// Quick sketch:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	c := cachematrix.New(m)
//	inv, _ := cachematrix.ResolveInverse(c) // computed
//	inv, _ = cachematrix.ResolveInverse(c)  // cached, same object
//	c.SetMatrix(next)                       // cache cleared
//
//	go get github.com/jits/ProgrammingAssignment2
package cachedmatrix
