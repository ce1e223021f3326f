package markov_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochmat/markov"
	"github.com/katalvlaran/stochmat/matrix"
)

// TestGTHSolve_ThreeStateChain solves an irreducible 3-state chain with a
// known closed-form answer.
func TestGTHSolve_ThreeStateChain(t *testing.T) {
	P := mustRows(t, [][]float64{
		{0.9, 0.075, 0.025},
		{0.15, 0.8, 0.05},
		{0.25, 0.25, 0.5},
	})

	x, err := markov.GTHSolve(P)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.625, 0.3125, 0.0625}, x, tol)
	requireStationary(t, x, P)
}

// TestGTHSolve_SingleState returns [1] for any 1×1 input.
func TestGTHSolve_SingleState(t *testing.T) {
	for _, v := range []float64{1, 0, -3} {
		x, err := markov.GTHSolve(mustRows(t, [][]float64{{v}}))
		require.NoError(t, err)
		assert.Equal(t, []float64{1}, x)
	}
}

// TestGTHSolve_TinyProbabilities keeps full relative accuracy where
// 1 - ε is indistinguishable from 1.
func TestGTHSolve_TinyProbabilities(t *testing.T) {
	const eps, delta = 1e-17, 3e-17
	P := mustRows(t, [][]float64{
		{1 - eps, eps},
		{delta, 1 - delta},
	})

	x, err := markov.GTHSolve(P)
	require.NoError(t, err)
	assert.InEpsilon(t, delta/(eps+delta), x[0], 1e-14)
	assert.InEpsilon(t, eps/(eps+delta), x[1], 1e-14)
}

// TestGTHSolve_Metzler solves x·Q = 0 for a generator with negative diagonal,
// and shows the diagonal is never read.
func TestGTHSolve_Metzler(t *testing.T) {
	Q := mustRows(t, [][]float64{
		{-2, 2},
		{1, -1},
	})
	x, err := markov.GTHSolve(Q)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3}, x, tol)

	// Same off-diagonal rates, arbitrary diagonal and unnormalized rows.
	A := mustRows(t, [][]float64{
		{7, 4},
		{2, 123},
	})
	y, err := markov.GTHSolve(A)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x, y, tol)
}

// diagOverride replaces the diagonal of a wrapped Matrix on reads.
type diagOverride struct {
	matrix.Matrix
	diag []float64
}

func (d diagOverride) At(i, j int) (float64, error) {
	if i == j && i >= 0 && i < len(d.diag) {
		return d.diag[i], nil
	}
	return d.Matrix.At(i, j)
}

// TestGTHSolve_NonFiniteDiagonal accepts NaN and ±Inf on the diagonal, on the
// generic path and on the Dense buffer itself.
func TestGTHSolve_NonFiniteDiagonal(t *testing.T) {
	rows := [][]float64{
		{0.9, 0.075, 0.025},
		{0.15, 0.8, 0.05},
		{0.25, 0.25, 0.5},
	}
	want := []float64{0.625, 0.3125, 0.0625}
	diag := []float64{math.NaN(), math.NaN(), math.Inf(-1)}

	x, err := markov.GTHSolve(diagOverride{Matrix: mustRows(t, rows), diag: diag})
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, tol)

	for _, opts := range [][]markov.GTHOption{nil, {markov.WithOverwrite()}} {
		P := mustRows(t, rows)
		raw := P.RawData()
		raw[0], raw[4], raw[8] = diag[0], diag[1], diag[2]
		x, err = markov.GTHSolve(P, opts...)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, x, tol)
	}
}

// TestGTHSolve_ReducibleTieBreak documents the leading-block truncation on
// reducible input: the class reachable from the lowest indices wins.
func TestGTHSolve_ReducibleTieBreak(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []float64
	}{
		{
			name: "two absorbing states",
			rows: [][]float64{{1, 0, 0}, {0, 1, 0}, {0.5, 0.5, 0}},
			want: []float64{1, 0, 0},
		},
		{
			name: "leading 2-cycle",
			rows: [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
			want: []float64{0.5, 0.5, 0},
		},
		{
			name: "all zero",
			rows: [][]float64{{0, 0}, {0, 0}},
			want: []float64{1, 0},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x, err := markov.GTHSolve(mustRows(t, tc.rows))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, x, tol)
		})
	}
}

// TestGTHSolve_Overwrite shows the input is only mutated when allowed.
func TestGTHSolve_Overwrite(t *testing.T) {
	rows := [][]float64{
		{0.9, 0.075, 0.025},
		{0.15, 0.8, 0.05},
		{0.25, 0.25, 0.5},
	}
	P := mustRows(t, rows)
	pristine := mustRows(t, rows)

	x1, err := markov.GTHSolve(P)
	require.NoError(t, err)
	assert.Equal(t, pristine.RawData(), P.RawData(), "default solve must not touch the input")

	x2, err := markov.GTHSolve(P, markov.WithOverwrite())
	require.NoError(t, err)
	assert.Equal(t, x1, x2)
	assert.NotEqual(t, pristine.RawData(), P.RawData(), "overwrite solve reuses the input buffer")

	// Non-Dense implementations ignore the option.
	Q := mustRows(t, rows)
	_, err = markov.GTHSolve(opaque{Q}, markov.WithOverwrite())
	require.NoError(t, err)
	assert.Equal(t, pristine.RawData(), Q.RawData())
}

// TestGTHSolve_Errors covers shape and numeric-policy failures.
func TestGTHSolve_Errors(t *testing.T) {
	_, err := markov.GTHSolve(nil)
	assert.ErrorIs(t, err, markov.ErrShape)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = markov.GTHSolve(rect)
	assert.ErrorIs(t, err, markov.ErrShape)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	bad := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	bad.RawData()[1] = math.Inf(1)
	_, err = markov.GTHSolve(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.NotErrorIs(t, err, markov.ErrShape)
}

// TestGTHSolve_RandomIrreducible checks x·P = x on dense positive matrices,
// through both the Dense and the generic path.
func TestGTHSolve_RandomIrreducible(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(20)
		P := mustRows(t, randomStochastic(rng, n, 1.0))

		x, err := markov.GTHSolve(P)
		require.NoError(t, err)
		requireStationary(t, x, P)

		y, err := markov.GTHSolve(opaque{P})
		require.NoError(t, err)
		assert.Equal(t, x, y)
	}
}
