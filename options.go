package macrocycle

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-macrocycle/hpfilter"
)

// Options configures how a series is decomposed
type Options struct {
	// Lambdas are the HP smoothing weights to decompose the series with. Each produces its own
	// trend and cycle.
	Lambdas []float64       `json:"lambdas"`
	Solver  hpfilter.Solver `json:"solver"`

	// LogTransform filters the natural log of the series so cycles read as percentage deviations
	// from trend
	LogTransform bool `json:"log_transform"`
}

// NewDefaultOptions filters log levels with the annual, intermediate and quarterly weights
func NewDefaultOptions() *Options {
	lambdas := make([]float64, len(hpfilter.DefaultLambdas))
	copy(lambdas, hpfilter.DefaultLambdas)
	return &Options{
		Lambdas:      lambdas,
		Solver:       hpfilter.SolverBanded,
		LogTransform: true,
	}
}

// Validate returns the default options when none are set and fills in the default smoothing
// weights when none are listed.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if _, err := (&hpfilter.Options{Solver: o.Solver}).Validate(); err != nil {
		return nil, err
	}

	res := *o
	if len(res.Lambdas) == 0 {
		res.Lambdas = NewDefaultOptions().Lambdas
	}
	for _, lambda := range res.Lambdas {
		if math.IsNaN(lambda) || lambda < 0 {
			return nil, fmt.Errorf("lambda %g, %w", lambda, ErrInvalidLambda)
		}
	}
	return &res, nil
}

func (o *Options) filterOptions() *hpfilter.Options {
	return &hpfilter.Options{Solver: o.Solver}
}
