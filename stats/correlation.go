package stats

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aouyang1/go-macrocycle/timedataset"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrInsufficientOverlap  = errors.New("insufficient overlapping observations")
	ErrUndefinedCorrelation = errors.New("correlation undefined for a constant series")
)

// MinOverlap is the minimum number of aligned pairs a correlation is computed over
const MinOverlap = 2

// CorrelationResult is the pearson correlation of two series over their common time points
type CorrelationResult struct {
	Coefficient  float64   `json:"coefficient"`
	OverlapStart time.Time `json:"overlap_start"`
	OverlapEnd   time.Time `json:"overlap_end"`
	N            int       `json:"n"`
}

// Correlation aligns both series on their common time points, drops pairs where either value
// is NaN and computes the pearson correlation coefficient of what remains.
func Correlation(a, b *timedataset.TimeDataset) (*CorrelationResult, error) {
	for _, ts := range []*timedataset.TimeDataset{a, b} {
		if ts != nil && len(ts.T) != len(ts.Y) {
			return nil, fmt.Errorf("got %d time points and %d values, %w", len(ts.T), len(ts.Y), timedataset.ErrDatasetLenMismatch)
		}
	}

	alignedA, alignedB := timedataset.InnerJoin(a, b)

	t := make(timedataset.TimeSlice, 0, alignedA.Len())
	x := make([]float64, 0, alignedA.Len())
	y := make([]float64, 0, alignedB.Len())
	for i := 0; i < alignedA.Len(); i++ {
		if math.IsNaN(alignedA.Y[i]) || math.IsNaN(alignedB.Y[i]) {
			continue
		}
		t = append(t, alignedA.T[i])
		x = append(x, alignedA.Y[i])
		y = append(y, alignedB.Y[i])
	}

	if len(t) < MinOverlap {
		return nil, fmt.Errorf("got %d aligned pairs, need at least %d, %w", len(t), MinOverlap, ErrInsufficientOverlap)
	}

	coef := stat.Correlation(x, y, nil)
	if math.IsNaN(coef) {
		return nil, ErrUndefinedCorrelation
	}
	return &CorrelationResult{
		Coefficient:  coef,
		OverlapStart: t.StartTime(),
		OverlapEnd:   t.EndTime(),
		N:            len(t),
	}, nil
}
