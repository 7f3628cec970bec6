// Package cachematrix_test contains unit tests for the MatrixCache container
// and the ResolveInverse resolver: fill, hit, invalidation, round-trip and
// failure propagation.
package cachematrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jits/ProgrammingAssignment2/cachematrix"
	"github.com/jits/ProgrammingAssignment2/matrix"
)

// epsClose is the tolerance used for all numeric comparisons in this package.
const epsClose = 1e-9

// mustFromRows builds a *Dense from a rectangular literal or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}
	return m
}

// requireClose asserts got matches the want literal elementwise within epsClose.
func requireClose(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	w := mustFromRows(t, want)
	ok, err := matrix.AllClose(w, got, epsClose)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ beyond eps=%g:\nwant:\n%v\ngot: %v", epsClose, w, got)
}

// countingSolver wraps matrix.Inverse and counts invocations, so tests can
// assert the primitive runs exactly once per generation.
func countingSolver(calls *int) cachematrix.Solver {
	return func(m matrix.Matrix) (matrix.Matrix, error) {
		*calls++
		return matrix.Inverse(m)
	}
}

// ---------- Container contract ----------

func TestMatrixCache_StartsEmpty(t *testing.T) {
	t.Parallel()

	c := cachematrix.New(mustFromRows(t, [][]float64{{1, 0}, {0, 1}}))

	inv, ok := c.Inverse()
	require.False(t, ok, "fresh cache must be Empty")
	require.Nil(t, inv)
}

func TestMatrixCache_NilPlaceholder(t *testing.T) {
	t.Parallel()

	// New(nil) is a legal placeholder construction: Empty and matrixless.
	c := cachematrix.New(nil)
	require.Nil(t, c.Matrix())
	_, ok := c.Inverse()
	require.False(t, ok)

	// Resolving against the placeholder fails exactly like the primitive does.
	_, err := cachematrix.ResolveInverse(c)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// SetMatrix turns the placeholder into a usable generation.
	c.SetMatrix(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))
	inv, err := cachematrix.ResolveInverse(c)
	require.NoError(t, err)
	requireClose(t, [][]float64{{0.5, 0}, {0, 0.5}}, inv)
}

func TestMatrixCache_SetInverseTrustsCaller(t *testing.T) {
	t.Parallel()

	c := cachematrix.New(mustFromRows(t, [][]float64{{1, 2}, {3, 4}}))

	// SetInverse performs no verification: whatever is stored is served.
	bogus := mustFromRows(t, [][]float64{{42, 0}, {0, 42}})
	c.SetInverse(bogus)

	got, err := cachematrix.ResolveInverse(c)
	require.NoError(t, err)
	require.Same(t, bogus, got, "stored value must be returned untouched")
}

func TestMatrixCache_AccessorsHaveNoSideEffects(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := cachematrix.New(m)

	// Reading must never trigger computation or state changes.
	require.Same(t, m, c.Matrix())
	_, ok := c.Inverse()
	require.False(t, ok)
	_, ok = c.Inverse()
	require.False(t, ok, "repeated reads must stay Empty")
}

// ---------- Resolver: fill, hit, invalidation ----------

func TestResolveInverse_CacheFill(t *testing.T) {
	t.Parallel()

	c := cachematrix.New(mustFromRows(t, [][]float64{{1, 2}, {3, 4}}))

	inv, err := cachematrix.ResolveInverse(c)
	require.NoError(t, err)
	requireClose(t, [][]float64{{-2, 1}, {1.5, -0.5}}, inv)

	// The compute path must have filled the cache.
	cached, ok := c.Inverse()
	require.True(t, ok, "cache must be Filled after first resolve")
	require.Same(t, inv, cached)
}

func TestResolveInverse_HitIdempotence(t *testing.T) {
	t.Parallel()

	var calls int
	var events []cachematrix.Event
	trace := func(e cachematrix.Event) { events = append(events, e) }

	c := cachematrix.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	first, err := cachematrix.ResolveInverse(c,
		cachematrix.WithSolver(countingSolver(&calls)),
		cachematrix.WithTrace(trace),
	)
	require.NoError(t, err)
	requireClose(t, [][]float64{{0.5, 0}, {0, 0.5}}, first)

	second, err := cachematrix.ResolveInverse(c,
		cachematrix.WithSolver(countingSolver(&calls)),
		cachematrix.WithTrace(trace),
	)
	require.NoError(t, err)

	// Reference-equal results and exactly one solver run across both calls.
	require.Same(t, first, second, "hit must return the identical cached object")
	require.Equal(t, 1, calls, "solver must run exactly once across both calls")
	require.Equal(t, []cachematrix.Event{cachematrix.EventMiss, cachematrix.EventHit}, events)
}

func TestResolveInverse_Invalidation(t *testing.T) {
	t.Parallel()

	var calls int
	solver := cachematrix.WithSolver(countingSolver(&calls))

	// Generation 1: identity — resolve returns identity.
	c := cachematrix.New(mustFromRows(t, [][]float64{{1, 0}, {0, 1}}))
	inv1, err := cachematrix.ResolveInverse(c, solver)
	require.NoError(t, err)
	requireClose(t, [][]float64{{1, 0}, {0, 1}}, inv1)

	// Replacing the matrix must clear the cache immediately.
	c.SetMatrix(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))
	_, ok := c.Inverse()
	require.False(t, ok, "SetMatrix must clear the cached inverse")

	// Generation 2: the resolve recomputes against the NEW matrix.
	inv2, err := cachematrix.ResolveInverse(c, solver)
	require.NoError(t, err)
	requireClose(t, [][]float64{{0.5, 0}, {0, 0.5}}, inv2)
	require.Equal(t, 2, calls, "each generation computes exactly once")
}

func TestResolveInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		rows [][]float64
	}{
		{"diag2", [][]float64{{2, 0}, {0, 2}}},
		{"dense2", [][]float64{{1, 2}, {3, 4}}},
		{"dense3", [][]float64{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := mustFromRows(t, tc.rows)
			c := cachematrix.New(m)

			inv, err := cachematrix.ResolveInverse(c)
			require.NoError(t, err)

			prod, err := matrix.Mul(m, inv)
			require.NoError(t, err)
			want, err := matrix.IdentityLike(m)
			require.NoError(t, err)

			ok, err := matrix.AllClose(want, prod, epsClose)
			require.NoError(t, err)
			require.True(t, ok, "M × ResolveInverse(cache-of-M) must be identity within eps")
		})
	}
}

// ---------- Resolver: failure propagation ----------

func TestResolveInverse_SingularPropagates(t *testing.T) {
	t.Parallel()

	var events []cachematrix.Event
	c := cachematrix.New(mustFromRows(t, [][]float64{{1, 2}, {2, 4}}))

	_, err := cachematrix.ResolveInverse(c,
		cachematrix.WithTrace(func(e cachematrix.Event) { events = append(events, e) }),
	)
	require.ErrorIs(t, err, matrix.ErrSingular, "primitive failure must surface unchanged")

	// Failure must not poison the cache: still Empty, next call retries.
	_, ok := c.Inverse()
	require.False(t, ok)
	require.Equal(t, []cachematrix.Event{cachematrix.EventMiss}, events)
}

func TestResolveInverse_NonSquarePropagates(t *testing.T) {
	t.Parallel()

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	c := cachematrix.New(rect)
	_, err = cachematrix.ResolveInverse(c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestResolveInverse_NilCache(t *testing.T) {
	t.Parallel()

	_, err := cachematrix.ResolveInverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Open-question behavior: options ignored on hits ----------

func TestResolveInverse_HitIgnoresSolverMismatch(t *testing.T) {
	t.Parallel()

	c := cachematrix.New(mustFromRows(t, [][]float64{{2, 0}, {0, 2}}))

	first, err := cachematrix.ResolveInverse(c)
	require.NoError(t, err)

	// A different solver on the second call must NOT be consulted: the hit
	// wins regardless of parameter mismatch within one generation.
	var called bool
	second, err := cachematrix.ResolveInverse(c, cachematrix.WithSolver(
		func(m matrix.Matrix) (matrix.Matrix, error) {
			called = true
			return matrix.Inverse(m)
		},
	))
	require.NoError(t, err)
	require.Same(t, first, second)
	require.False(t, called, "hit path must not consult the solver")
}
