package markov_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochmat/markov"
	"github.com/katalvlaran/stochmat/matrix"
)

// requireRows compares a result matrix against expected rows.
func requireRows(t *testing.T, want [][]float64, got *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	for i := range want {
		row, err := got.Row(i)
		require.NoError(t, err)
		require.InDeltaSlice(t, want[i], row, tol)
	}
}

func TestStationaryDists_Irreducible(t *testing.T) {
	P := mustRows(t, [][]float64{
		{0.9, 0.075, 0.025},
		{0.15, 0.8, 0.05},
		{0.25, 0.25, 0.5},
	})
	got, err := markov.StationaryDists(P)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0.625, 0.3125, 0.0625}}, got)
}

func TestStationaryDists_TwoAbsorbing(t *testing.T) {
	P := mustRows(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0.5, 0.5, 0},
	})
	got, err := markov.StationaryDists(P)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}}, got)
}

func TestStationaryDists_AllZeroIsIdentity(t *testing.T) {
	P, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	got, err := markov.StationaryDists(P)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, got)
}

func TestStationaryDists_SingleState(t *testing.T) {
	got, err := markov.StationaryDists(mustRows(t, [][]float64{{1}}))
	require.NoError(t, err)
	requireRows(t, [][]float64{{1}}, got)
}

// TestStationaryDists_NonLeadingClasses solves classes whose members are not
// contiguous and not at the front of the index range.
func TestStationaryDists_NonLeadingClasses(t *testing.T) {
	sm := mustStoch(t, fiveState)
	got, err := sm.StationaryDists()
	require.NoError(t, err)

	want := [][]float64{
		{0, 0.625, 0, 0.375, 0},
		{0, 0, 5.0 / 14, 0, 9.0 / 14},
	}
	requireRows(t, want, got)

	x, err := sm.StationaryDist(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want[1], x, tol)

	_, err = sm.StationaryDist(0)
	assert.ErrorIs(t, err, markov.ErrNotRecurrent)
	_, err = sm.StationaryDist(3)
	assert.ErrorIs(t, err, markov.ErrUnknownClass)
}

// TestStationaryDist_Irreducible uses the whole-matrix path.
func TestStationaryDist_Irreducible(t *testing.T) {
	sm := mustStoch(t, [][]float64{{0.5, 0.5}, {0.25, 0.75}})
	x, err := sm.StationaryDist(0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3}, x, tol)
}

func TestStationaryDists_ShapeError(t *testing.T) {
	rect, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	_, err = markov.StationaryDists(rect)
	assert.ErrorIs(t, err, markov.ErrShape)
}

// TestStationaryDists_Properties checks support, normalization and x·P = x
// for every row on seeded random reducible chains.
func TestStationaryDists_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 60; trial++ {
		n := 1 + rng.Intn(15)
		sm := mustStoch(t, randomStochastic(rng, n, 0.05+0.25*rng.Float64()))
		P := sm.Matrix()

		got, err := sm.StationaryDists()
		require.NoError(t, err)
		rec := sm.RecClasses()
		require.Equal(t, len(rec), got.Rows())

		for r, class := range rec {
			row, err := got.Row(r)
			require.NoError(t, err)
			requireStationary(t, row, P)

			inClass := make(map[int]bool, len(class))
			for _, s := range class {
				inClass[s] = true
			}
			for s, v := range row {
				if !inClass[s] {
					assert.Zerof(t, v, "trial %d row %d state %d", trial, r, s)
				}
			}
		}
	}
}

func TestResidual(t *testing.T) {
	P := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	res, err := markov.Residual([]float64{1, 0}, P)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res)

	_, err = markov.Residual([]float64{1}, P)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = markov.Residual([]float64{0.5, 0.5}, rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestCheckStochastic(t *testing.T) {
	require.NoError(t, markov.CheckStochastic(mustRows(t, fiveState), 1e-12))

	err := markov.CheckStochastic(mustRows(t, [][]float64{{0.5, 0.4}, {0, 1}}), 1e-12)
	assert.ErrorIs(t, err, markov.ErrNotStochastic)
	assert.Contains(t, err.Error(), "row 0")

	err = markov.CheckStochastic(mustRows(t, [][]float64{{1.5, -0.5}, {0, 1}}), 1e-12)
	assert.ErrorIs(t, err, markov.ErrNotStochastic)

	err = markov.CheckStochastic(nil, 1e-12)
	assert.ErrorIs(t, err, markov.ErrShape)
}
