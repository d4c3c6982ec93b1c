// Package macrocycle decomposes macroeconomic series into trend and cycle with the
// Hodrick-Prescott filter at several smoothing weights and compares the resulting cycles across
// series.
package macrocycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/aouyang1/go-macrocycle/hpfilter"
	"github.com/aouyang1/go-macrocycle/stats"
	"github.com/aouyang1/go-macrocycle/timedataset"
)

var (
	ErrNoResults      = errors.New("no results")
	ErrLambdaNotFound = errors.New("series was not decomposed with lambda")
	ErrInvalidLambda  = errors.New("lambda must be non-negative")
)

// AnalyzeSeries drops missing observations, optionally takes logs and decomposes the series once
// per configured smoothing weight. A weight that fails is recorded in the results' Failed map; an
// error is only returned when the series cannot be prepared or every weight failed.
func AnalyzeSeries(name string, t []time.Time, y []float64, opt *Options) (*SeriesResults, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}

	ts, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return nil, fmt.Errorf("series %s, %w", name, err)
	}
	ts = ts.DropNan()
	if ts.Len() == 0 {
		return nil, fmt.Errorf("series %s has only missing values, %w", name, timedataset.ErrNoData)
	}
	if opt.LogTransform {
		ts, err = ts.Log()
		if err != nil {
			return nil, fmt.Errorf("series %s, %w", name, err)
		}
	}

	decomps, failed, err := hpfilter.DecomposeMany(ts, opt.Lambdas, opt.filterOptions())
	if err != nil {
		return nil, fmt.Errorf("series %s, %w", name, err)
	}

	res := &SeriesResults{
		Name:           name,
		LogTransform:   opt.LogTransform,
		Series:         ts,
		Decompositions: make([]LambdaResult, 0, len(decomps)),
		Failed:         failed,
	}
	for _, d := range decomps {
		res.Decompositions = append(res.Decompositions, LambdaResult{
			Lambda:       d.Lambda,
			Trend:        d.Trend,
			Cycle:        d.Cycle,
			CycleSummary: stats.Describe(d.Cycle),
		})
	}
	return res, nil
}

// CompareCycles correlates the cycles of two analyzed series at the same smoothing weight over
// the time points both series cover.
func CompareCycles(a, b *SeriesResults, lambda float64) (*stats.CorrelationResult, error) {
	if a == nil || b == nil {
		return nil, ErrNoResults
	}
	cycleA, err := a.CycleDataset(lambda)
	if err != nil {
		return nil, fmt.Errorf("series %s, %w", a.Name, err)
	}
	cycleB, err := b.CycleDataset(lambda)
	if err != nil {
		return nil, fmt.Errorf("series %s, %w", b.Name, err)
	}

	res, err := stats.Correlation(cycleA, cycleB)
	if err != nil {
		return nil, fmt.Errorf("cycles of %s and %s, %w", a.Name, b.Name, err)
	}
	return res, nil
}
