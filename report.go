package macrocycle

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/aouyang1/go-macrocycle/timedataset"
	"github.com/aouyang1/go-macrocycle/util"
)

// TablePrint writes the cycle summary of every smoothing weight
func (r *SeriesResults) TablePrint(w io.Writer, prefix, indent string) error {
	if r == nil {
		return ErrNoResults
	}

	scale := "levels"
	if r.LogTransform {
		scale = "log levels"
	}
	t := timedataset.TimeSlice(r.Series.T)
	if _, err := fmt.Fprintf(w, "%s%sSeries: %s (%s), %s to %s, %d observations\n",
		prefix, util.IndentExpand(indent, 0),
		r.Name, scale,
		t.StartTime().Format(time.DateOnly), t.EndTime().Format(time.DateOnly),
		r.Series.Len(),
	); err != nil {
		return err
	}

	rowFmt := "%s%s%-10s %12s %12s %12s %12s\n"
	if _, err := fmt.Fprintf(w, rowFmt, prefix, util.IndentExpand(indent, 1),
		"Lambda", "Cycle Mean", "Cycle StdDev", "Cycle Min", "Cycle Max"); err != nil {
		return err
	}
	for _, d := range r.Decompositions {
		if _, err := fmt.Fprintf(w, rowFmt, prefix, util.IndentExpand(indent, 1),
			lambdaLabel(d.Lambda),
			util.FormatFloat(d.CycleSummary.Mean, 4),
			util.FormatFloat(d.CycleSummary.StdDev, 4),
			util.FormatFloat(d.CycleSummary.Min, 4),
			util.FormatFloat(d.CycleSummary.Max, 4),
		); err != nil {
			return err
		}
	}

	if len(r.Failed) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%sFailed:\n", prefix, util.IndentExpand(indent, 1)); err != nil {
		return err
	}
	lambdas := make([]float64, 0, len(r.Failed))
	for lambda := range r.Failed {
		lambdas = append(lambdas, lambda)
	}
	sort.Float64s(lambdas)
	for _, lambda := range lambdas {
		if _, err := fmt.Fprintf(w, "%s%s%s: %s\n", prefix, util.IndentExpand(indent, 2), lambdaLabel(lambda), r.Failed[lambda]); err != nil {
			return err
		}
	}
	return nil
}
