// Package mat holds constructors for the matrices used by the trend filters on top of gonum
package mat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrTooFewPoints     = errors.New("second difference requires at least 3 points")
	ErrNonPositiveScale = errors.New("penalty weight must be positive")
)

// secondDiff holds the non-zero entries of a row of the second difference operator
var secondDiff = [3]float64{1, -2, 1}

// ddT holds the diagonal and the two super diagonals of D*D'
var ddT = [3]float64{6, -4, 1}

// HPBandwidth is the number of super diagonals of D*D'
const HPBandwidth = 2

// SecondDifference returns the (n-2)xn operator D where (Dx)[i] = x[i] - 2x[i+1] + x[i+2]
func SecondDifference(n int) (*mat.Dense, error) {
	if n < 3 {
		return nil, fmt.Errorf("got %d points, %w", n, ErrTooFewPoints)
	}
	d := mat.NewDense(n-2, n, nil)
	for i := 0; i < n-2; i++ {
		for k, c := range secondDiff {
			d.Set(i, i+k, c)
		}
	}
	return d, nil
}

// ApplySecondDifference returns D*y without materializing D
func ApplySecondDifference(y []float64) ([]float64, error) {
	n := len(y)
	if n < 3 {
		return nil, fmt.Errorf("got %d points, %w", n, ErrTooFewPoints)
	}
	dy := make([]float64, n-2)
	for i := range dy {
		dy[i] = y[i] - 2*y[i+1] + y[i+2]
	}
	return dy, nil
}

// ApplySecondDifferenceT returns D'*z where z has one value per row of D, i.e. n-2 values
func ApplySecondDifferenceT(z []float64) []float64 {
	res := make([]float64, len(z)+2)
	for i, v := range z {
		for k, c := range secondDiff {
			res[i+k] += c * v
		}
	}
	return res
}

func invScale(lambda float64) (float64, error) {
	if math.IsNaN(lambda) || lambda <= 0 {
		return 0, fmt.Errorf("got %g, %w", lambda, ErrNonPositiveScale)
	}
	// 1/+Inf is zero and leaves the plain D*D' projection
	return 1.0 / lambda, nil
}

// HPCycleSystemDense returns D*D' + I/lambda for n points as a dense symmetric matrix of size n-2
func HPCycleSystemDense(n int, lambda float64) (*mat.SymDense, error) {
	inv, err := invScale(lambda)
	if err != nil {
		return nil, err
	}
	d, err := SecondDifference(n)
	if err != nil {
		return nil, err
	}

	m := n - 2
	sys := mat.NewSymDense(m, nil)
	sys.SymOuterK(1, d)
	for i := 0; i < m; i++ {
		sys.SetSym(i, i, sys.At(i, i)+inv)
	}
	return sys, nil
}

// HPCycleSystemBand returns D*D' + I/lambda for n points in symmetric band storage. The matrix is
// pentadiagonal so only the diagonal and up to two super diagonals are stored.
func HPCycleSystemBand(n int, lambda float64) (*mat.SymBandDense, error) {
	inv, err := invScale(lambda)
	if err != nil {
		return nil, err
	}
	if n < 3 {
		return nil, fmt.Errorf("got %d points, %w", n, ErrTooFewPoints)
	}

	m := n - 2
	k := min(HPBandwidth, m-1)
	stride := k + 1
	data := make([]float64, m*stride)
	for i := 0; i < m; i++ {
		for j := 0; j <= k && i+j < m; j++ {
			data[i*stride+j] = ddT[j]
		}
		data[i*stride] += inv
	}
	return mat.NewSymBandDense(m, k, data), nil
}
