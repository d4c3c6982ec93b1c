package macrocycle

import (
	"math"
	"strconv"
	"time"

	"github.com/aouyang1/go-macrocycle/stats"
	"github.com/aouyang1/go-macrocycle/timedataset"

	"github.com/goccy/go-json"
)

// LambdaResult is the decomposition of a series for one smoothing weight
type LambdaResult struct {
	Lambda       float64       `json:"-"`
	Trend        []float64     `json:"trend"`
	Cycle        []float64     `json:"cycle"`
	CycleSummary stats.Summary `json:"cycle_summary"`
}

// MarshalJSON writes an infinite lambda as the string "+Inf"
func (l LambdaResult) MarshalJSON() ([]byte, error) {
	var lambda any = l.Lambda
	if math.IsInf(l.Lambda, 0) {
		lambda = lambdaLabel(l.Lambda)
	}
	return json.Marshal(struct {
		Lambda       any           `json:"lambda"`
		Trend        []float64     `json:"trend"`
		Cycle        []float64     `json:"cycle"`
		CycleSummary stats.Summary `json:"cycle_summary"`
	}{
		Lambda:       lambda,
		Trend:        l.Trend,
		Cycle:        l.Cycle,
		CycleSummary: l.CycleSummary,
	})
}

// SeriesResults holds every decomposition of a single named series. Series is the data the filter
// ran over, after dropping missing values and taking logs if requested.
type SeriesResults struct {
	Name           string                   `json:"name"`
	LogTransform   bool                     `json:"log_transform"`
	Series         *timedataset.TimeDataset `json:"series"`
	Decompositions []LambdaResult           `json:"decompositions"`

	// Failed maps each smoothing weight that could not be applied to its error
	Failed map[float64]error `json:"-"`
}

// Lambda returns the decomposition for the given smoothing weight
func (r *SeriesResults) Lambda(lambda float64) (*LambdaResult, error) {
	if r == nil {
		return nil, ErrNoResults
	}
	for i := range r.Decompositions {
		if r.Decompositions[i].Lambda == lambda {
			return &r.Decompositions[i], nil
		}
	}
	if err, exists := r.Failed[lambda]; exists {
		return nil, err
	}
	return nil, ErrLambdaNotFound
}

// CycleDataset returns the cycle for the given smoothing weight as a time series
func (r *SeriesResults) CycleDataset(lambda float64) (*timedataset.TimeDataset, error) {
	res, err := r.Lambda(lambda)
	if err != nil {
		return nil, err
	}
	t := make([]time.Time, len(r.Series.T))
	cycle := make([]float64, len(res.Cycle))
	copy(t, r.Series.T)
	copy(cycle, res.Cycle)
	return &timedataset.TimeDataset{T: t, Y: cycle}, nil
}

func lambdaLabel(lambda float64) string {
	return strconv.FormatFloat(lambda, 'g', -1, 64)
}
