package timedataset

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateT returns n time points starting at start and spaced by the given number of months,
// e.g. 3 for quarterly and 12 for annual data.
func GenerateT(n int, start time.Time, months int) []time.Time {
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, start.AddDate(0, months*i, 0))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLinearY returns intercept + slope*i for i in [0, n)
func GenerateLinearY(n int, intercept, slope float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, intercept+slope*float64(i))
	}
	return Series(y)
}

// GenerateWaveY returns a sine wave with a period measured in observations
func GenerateWaveY(n int, amp, period, phase float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, amp*math.Sin(2.0*math.Pi/period*float64(i)+phase))
	}
	return Series(y)
}

// GenerateNoise returns gaussian noise scaled by noiseScale. The seed makes the output
// reproducible.
func GenerateNoise(n int, noiseScale float64, seed uint64) Series {
	r := rand.New(rand.NewPCG(seed, seed))
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, r.NormFloat64()*noiseScale)
	}
	return Series(y)
}
