package markov_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochmat/markov"
	"github.com/katalvlaran/stochmat/matrix"
)

// opaque hides *matrix.Dense to force generic Matrix code paths.
type opaque struct{ matrix.Matrix }

// tol is the accuracy required of every stationary vector in these tests.
const tol = 1e-10

// mustRows builds a *matrix.Dense from literal rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustStoch builds a StochMatrix from literal rows or fails the test.
func mustStoch(t testing.TB, rows [][]float64) *markov.StochMatrix {
	t.Helper()
	sm, err := markov.FromRows(rows)
	require.NoError(t, err)

	return sm
}

// randomStochastic returns an n×n row-stochastic matrix where each entry is
// positive with the given probability; every row keeps at least one positive
// entry so the matrix is a valid transition matrix.
func randomStochastic(rng *rand.Rand, n int, density float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		sum := 0.0
		for j := range rows[i] {
			if rng.Float64() < density {
				rows[i][j] = rng.Float64() + 1e-3
				sum += rows[i][j]
			}
		}
		if sum == 0 {
			j := rng.Intn(n)
			rows[i][j] = 1
			sum = 1
		}
		for j := range rows[i] {
			rows[i][j] /= sum
		}
	}

	return rows
}

// requireStationary checks that x is a probability vector with x·P = x.
func requireStationary(t testing.TB, x []float64, p matrix.Matrix) {
	t.Helper()
	sum := 0.0
	for _, v := range x {
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	require.InDelta(t, 1.0, sum, tol)

	res, err := markov.Residual(x, p)
	require.NoError(t, err)
	require.LessOrEqual(t, res, tol)
}
