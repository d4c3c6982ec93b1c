package hpfilter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSolver = errors.New("unknown solver")

// Solver selects how the trend system is solved
type Solver int

const (
	// SolverBanded factorizes the pentadiagonal system in band storage in O(n)
	SolverBanded Solver = iota

	// SolverDense builds the full matrix and uses a dense cholesky factorization in O(n^3)
	SolverDense
)

func (s Solver) String() string {
	switch s {
	case SolverBanded:
		return "banded"
	case SolverDense:
		return "dense"
	default:
		return fmt.Sprintf("solver(%d)", int(s))
	}
}

// ParseSolver maps a solver name to a Solver
func ParseSolver(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "banded":
		return SolverBanded, nil
	case "dense":
		return SolverDense, nil
	default:
		return 0, fmt.Errorf("%q, %w", name, ErrUnknownSolver)
	}
}

type Options struct {
	Solver Solver `json:"solver"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Solver: SolverBanded,
	}
}

// Validate returns the default options when none are set
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	switch o.Solver {
	case SolverBanded, SolverDense:
		return o, nil
	default:
		return nil, fmt.Errorf("%s, %w", o.Solver, ErrUnknownSolver)
	}
}
