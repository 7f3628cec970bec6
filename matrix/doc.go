// Package matrix provides the dense numeric core used by cachematrix:
// a row-major Dense implementation of the Matrix interface plus the
// deterministic linear-algebra kernels the cached-inversion layer relies on.
//
// ✨ What lives here:
//   - Dense: row-major float64 storage with O(1) At/Set and strict bounds checks
//   - LU: Doolittle factorization without pivoting (deterministic by design)
//   - Inverse: A⁻¹ via LU + per-column forward/backward substitution
//   - Mul: matrix product with a cache-friendly fast path for *Dense
//   - AllClose: elementwise comparison within a tolerance
//
// ⚙️ Conventions:
//   - All user-triggered failures surface as package sentinel errors
//     (ErrSingular, ErrDimensionMismatch, ...) matchable via errors.Is;
//     kernels wrap them with an operation tag ("Inverse: ...").
//   - Validation is centralized in validators.go; kernels never duplicate
//     guard logic.
//   - Every kernel has a *Dense fast path over the flat backing slice and a
//     generic At/Set fallback for foreign Matrix implementations, with
//     fixed loop orders so results are reproducible bit-for-bit.
//
// Singular input is reported, never recovered: Inverse and LU return
// ErrSingular on a zero pivot and leave retry/conditioning policy to the
// caller.
package matrix
