// Package growth decomposes the growth of output per worker into the contributions of total factor
// productivity and capital deepening over a panel of countries.
package growth

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoObservations     = errors.New("no observations")
	ErrMixedCountries     = errors.New("observations span more than one country")
	ErrNoResultForCountry = errors.New("no result for country, observations cover a single year")
	ErrNoResults          = errors.New("no country produced a result")
)

// UndefinedShare marks a share of growth whose denominator, the output growth rate, is zero.
// NaN never compares equal so test for it with IsUndefined.
var UndefinedShare = math.NaN()

// IsUndefined reports whether a metric holds the UndefinedShare sentinel
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Row is the growth accounting summary of a country between its first and last observed year.
// Growth figures are annualized percentages and are kept at full precision.
type Row struct {
	Country   string `json:"country"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`

	GrowthRate       float64 `json:"growth_rate"`
	TFPGrowth        float64 `json:"tfp_growth"`
	CapitalDeepening float64 `json:"capital_deepening"`
	TFPShare         float64 `json:"tfp_share"`
	CapitalShare     float64 `json:"capital_share"`
}

// AnnualizedGrowth returns the compound annual growth rate in percent of going from start to end
// over the given number of years.
func AnnualizedGrowth(end, start float64, years int) float64 {
	return (math.Pow(end/start, 1.0/float64(years)) - 1.0) * 100.0
}

// share divides a contribution by the output growth rate
func share(contrib, growthRate float64) float64 {
	if growthRate == 0 {
		return UndefinedShare
	}
	return contrib / growthRate
}

// Compute runs growth accounting over the observations of a single country. The first and last
// years present in the observations are used regardless of any requested window.
func Compute(obs []Observation) (Row, error) {
	if len(obs) == 0 {
		return Row{}, ErrNoObservations
	}

	start, end := obs[0], obs[0]
	for _, o := range obs[1:] {
		if o.Country != start.Country {
			return Row{}, fmt.Errorf("%q and %q, %w", start.Country, o.Country, ErrMixedCountries)
		}
		if o.Year < start.Year {
			start = o
		}
		if o.Year > end.Year {
			end = o
		}
	}

	years := end.Year - start.Year
	if years == 0 {
		return Row{}, fmt.Errorf("%s in %d, %w", start.Country, start.Year, ErrNoResultForCountry)
	}

	growthRate := AnnualizedGrowth(end.OutputPerWorker(), start.OutputPerWorker(), years)
	tfpGrowth := AnnualizedGrowth(end.RTFPNA, start.RTFPNA, years)
	capitalPerWorkerGrowth := AnnualizedGrowth(end.CapitalPerWorker(), start.CapitalPerWorker(), years)

	alphaAvg := (start.CapitalShare() + end.CapitalShare()) / 2.0
	capitalDeepening := alphaAvg * capitalPerWorkerGrowth

	return Row{
		Country:          start.Country,
		StartYear:        start.Year,
		EndYear:          end.Year,
		GrowthRate:       growthRate,
		TFPGrowth:        tfpGrowth,
		CapitalDeepening: capitalDeepening,
		TFPShare:         share(tfpGrowth, growthRate),
		CapitalShare:     share(capitalDeepening, growthRate),
	}, nil
}
