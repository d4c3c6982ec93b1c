// Package hpfilter splits a time series into a smooth trend and a cyclical residual using the
// Hodrick-Prescott filter. The trend solves
//
//	min sum (y[t]-trend[t])^2 + lambda * sum (trend[t+1]-2*trend[t]+trend[t-1])^2
//
// which reduces to the linear system (I + lambda*D'D)*trend = y with D the second difference
// operator.
package hpfilter

import (
	"errors"
	"fmt"
	"math"
	"time"

	mat_ "github.com/aouyang1/go-macrocycle/mat"
	"github.com/aouyang1/go-macrocycle/models"
	"github.com/aouyang1/go-macrocycle/timedataset"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrSolveFailed   = errors.New("unable to solve trend system")
	ErrNoLambdas     = errors.New("no smoothing weights provided")
	ErrAllLambdasBad = errors.New("every smoothing weight failed")
)

// MinObservations is the minimum series length the second difference penalty is defined for
const MinObservations = 3

// Common smoothing weights
const (
	LambdaAnnual    = 100.0
	LambdaQuarterly = 1600.0
)

// DefaultLambdas are the weights typically compared on macro series
var DefaultLambdas = []float64{10, 100, 1600}

// Decomposition holds the trend and cycle of a series for one smoothing weight. Trend and Cycle
// are aligned index for index with T and trend[i] + cycle[i] reconstructs the input.
type Decomposition struct {
	Lambda float64     `json:"lambda"`
	T      []time.Time `json:"time"`
	Trend  []float64   `json:"trend"`
	Cycle  []float64   `json:"cycle"`
}

// Decompose runs the HP filter over the series with smoothing weight lambda. A zero lambda returns
// the series as its own trend and a positive infinite lambda returns the least squares line.
func Decompose(ts *timedataset.TimeDataset, lambda float64, opt *Options) (*Decomposition, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	if err := validateInput(ts, lambda); err != nil {
		return nil, err
	}

	n := ts.Len()
	var trend []float64
	switch {
	case lambda == 0:
		trend = make([]float64, n)
		copy(trend, ts.Y)
	case math.IsInf(lambda, 1):
		trend, err = models.LinearTrend(ts.Y)
	case opt.Solver == SolverDense:
		trend, err = solveDense(ts.Y, lambda)
	default:
		trend, err = solveBanded(ts.Y, lambda)
	}
	if err != nil {
		return nil, fmt.Errorf("lambda %g, %w", lambda, err)
	}

	t := make([]time.Time, n)
	copy(t, ts.T)
	return &Decomposition{
		Lambda: lambda,
		T:      t,
		Trend:  trend,
		Cycle:  floats.SubTo(make([]float64, n), ts.Y, trend),
	}, nil
}

func validateInput(ts *timedataset.TimeDataset, lambda float64) error {
	if ts == nil {
		return fmt.Errorf("no time series, %w", ErrInvalidInput)
	}
	if len(ts.T) != len(ts.Y) {
		return fmt.Errorf("got %d time points and %d values, %w", len(ts.T), len(ts.Y), ErrInvalidInput)
	}
	if ts.Len() < MinObservations {
		return fmt.Errorf("series has %d observations, need at least %d, %w", ts.Len(), MinObservations, ErrInvalidInput)
	}
	if math.IsNaN(lambda) || lambda < 0 {
		return fmt.Errorf("lambda must be non-negative, got %g, %w", lambda, ErrInvalidInput)
	}
	for i, v := range ts.Y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value at index %d, %w", i, ErrInvalidInput)
		}
	}
	return nil
}

// solveBanded and solveDense work on the cycle form of the filter. With z solving
// (D*D' + I/lambda)*z = D*y the cycle is D'*z and the trend is y - D'*z. Unlike I + lambda*D'D
// the conditioning of this system does not grow with lambda.
func solveBanded(y []float64, lambda float64) ([]float64, error) {
	a, err := mat_.HPCycleSystemBand(len(y), lambda)
	if err != nil {
		return nil, err
	}

	var chol mat.BandCholesky
	if ok := chol.Factorize(a); !ok {
		return nil, ErrSolveFailed
	}
	return solveCycle(&chol, y)
}

func solveDense(y []float64, lambda float64) ([]float64, error) {
	a, err := mat_.HPCycleSystemDense(len(y), lambda)
	if err != nil {
		return nil, err
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, ErrSolveFailed
	}
	return solveCycle(&chol, y)
}

type vecSolver interface {
	SolveVecTo(dst *mat.VecDense, b mat.Vector) error
}

// solveCycle returns the trend y - D'*z
func solveCycle(s vecSolver, y []float64) ([]float64, error) {
	dy, err := mat_.ApplySecondDifference(y)
	if err != nil {
		return nil, err
	}

	var z mat.VecDense
	if err := s.SolveVecTo(&z, mat.NewVecDense(len(dy), dy)); err != nil {
		return nil, fmt.Errorf("%w, %w", ErrSolveFailed, err)
	}
	cycle := mat_.ApplySecondDifferenceT(mat.Col(nil, 0, &z))
	return floats.SubTo(make([]float64, len(y)), y, cycle), nil
}

// DecomposeMany runs Decompose for each lambda. A failing lambda does not stop the others; its
// error is reported in the returned map keyed by lambda. An error is only returned when no
// lambda succeeded.
func DecomposeMany(ts *timedataset.TimeDataset, lambdas []float64, opt *Options) ([]*Decomposition, map[float64]error, error) {
	if len(lambdas) == 0 {
		return nil, nil, ErrNoLambdas
	}

	res := make([]*Decomposition, 0, len(lambdas))
	failed := make(map[float64]error)
	for _, lambda := range lambdas {
		d, err := Decompose(ts, lambda, opt)
		if err != nil {
			failed[lambda] = err
			continue
		}
		res = append(res, d)
	}

	if len(res) == 0 {
		return nil, failed, fmt.Errorf("%d lambdas, %w", len(lambdas), ErrAllLambdasBad)
	}
	return res, failed, nil
}
