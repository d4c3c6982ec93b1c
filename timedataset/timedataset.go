package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoData             = errors.New("no data")
	ErrNonMonotonic       = errors.New("time feature is not strictly increasing")
	ErrDatasetLenMismatch = errors.New("time feature has a different length than observations")
	ErrNonPositive        = errors.New("cannot take the log of a non-positive value")
)

// TimeDataset represents a time series storing a slice of time points and values.
// Both must be of the same length and the time points must be strictly increasing.
// Gaps between time points are allowed.
type TimeDataset struct {
	T []time.Time `json:"time"`
	Y []float64   `json:"values"`
}

// NewUnivariateDataset returns an instance of a TimeDataset given a time and value slice.
// The inputs are copied so the caller may reuse them.
func NewUnivariateDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrDatasetLenMismatch,
		)
	}

	for i := 1; i < len(t); i++ {
		if !t[i].After(t[i-1]) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(y))
	copy(tSeries, t)
	copy(ySeries, y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}, nil
}

// Len returns the number of observations
func (td *TimeDataset) Len() int {
	if td == nil {
		return 0
	}
	return len(td.Y)
}

func (td *TimeDataset) Copy() *TimeDataset {
	if td == nil {
		return nil
	}
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.Y))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// DropNan returns a new dataset without the observations holding a NaN value.
func (td *TimeDataset) DropNan() *TimeDataset {
	if td == nil {
		return nil
	}

	res := &TimeDataset{
		T: make([]time.Time, 0, len(td.T)),
		Y: make([]float64, 0, len(td.Y)),
	}
	for i := 0; i < len(td.Y); i++ {
		if math.IsNaN(td.Y[i]) {
			continue
		}
		res.T = append(res.T, td.T[i])
		res.Y = append(res.Y, td.Y[i])
	}
	return res
}

// Log returns a new dataset holding the natural log of every value. Every value must be
// strictly positive.
func (td *TimeDataset) Log() (*TimeDataset, error) {
	if td.Len() == 0 {
		return nil, ErrNoData
	}
	res := td.Copy()
	for i, v := range res.Y {
		if v <= 0 {
			return nil, fmt.Errorf("value %.4f at %s, %w", v, res.T[i].Format(time.DateOnly), ErrNonPositive)
		}
		res.Y[i] = math.Log(v)
	}
	return res, nil
}

// InnerJoin aligns two datasets on the time points they have in common. Time points present in
// only one of the datasets are dropped. The returned datasets share the same time slice values.
func InnerJoin(a, b *TimeDataset) (*TimeDataset, *TimeDataset) {
	n := min(a.Len(), b.Len())
	resA := &TimeDataset{T: make([]time.Time, 0, n), Y: make([]float64, 0, n)}
	resB := &TimeDataset{T: make([]time.Time, 0, n), Y: make([]float64, 0, n)}
	if n == 0 {
		return resA, resB
	}

	// both time slices are strictly increasing so a single merge pass suffices
	var i, j int
	for i < len(a.T) && j < len(b.T) {
		switch {
		case a.T[i].Equal(b.T[j]):
			resA.T = append(resA.T, a.T[i])
			resA.Y = append(resA.Y, a.Y[i])
			resB.T = append(resB.T, a.T[i])
			resB.Y = append(resB.Y, b.Y[j])
			i++
			j++
		case a.T[i].Before(b.T[j]):
			i++
		default:
			j++
		}
	}
	return resA, resB
}
