// SPDX-License-Identifier: MIT
// Package markov: sentinel error set.
// Every message is prefixed with "markov: ...". Errors raised from the matrix
// layer are wrapped alongside the markov sentinel, so errors.Is matches both
// (e.g. ErrShape and matrix.ErrNonSquare).

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is the ShapeError: the input is nil, empty, ragged or not square.
	// It is fatal and raised at construction/solve entry.
	ErrShape = errors.New("markov: matrix must be square and 2-dimensional")

	// ErrUnknownClass indicates a class label outside [0, NumCommClasses()).
	ErrUnknownClass = errors.New("markov: unknown class label")

	// ErrNotRecurrent indicates a class label that has outgoing transitions,
	// so no stationary distribution is supported on it.
	ErrNotRecurrent = errors.New("markov: class is not recurrent")

	// ErrNotStochastic is returned by CheckStochastic for a matrix with a
	// negative entry or a row sum away from 1.
	ErrNotStochastic = errors.New("markov: matrix is not row-stochastic")
)

// shapeErrorf tags a matrix-layer validation failure as ErrShape while
// keeping the underlying cause matchable.
func shapeErrorf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrShape, cause)
}

// markovErrorf wraps an underlying error with the given operation tag.
func markovErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
