package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a series. StdDev is the population standard deviation.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe computes summary statistics ignoring NaN values. All fields are NaN when no values
// remain.
func Describe(y []float64) Summary {
	vals := make([]float64, 0, len(y))
	for _, v := range y {
		if math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
	}

	if len(vals) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, StdDev: nan, Min: nan, Max: nan}
	}

	mean, variance := stat.PopMeanVariance(vals, nil)
	return Summary{
		N:      len(vals),
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
	}
}
