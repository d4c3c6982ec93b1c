package macrocycle

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/aouyang1/go-macrocycle/timedataset"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineTSeries generates an echart multi-line chart for some arbitrary time/value combination. Each
// slice in y must have the same length as t. NaN values are left as gaps in the line.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	line.SetXAxis(timedataset.TimeSlice(t).Labels(time.DateOnly))
	for i, series := range seriesName {
		lineData := make([]opts.LineData, 0, len(y[i]))
		for _, v := range y[i] {
			if math.IsNaN(v) {
				lineData = append(lineData, opts.LineData{Value: "-"})
				continue
			}
			lineData = append(lineData, opts.LineData{Value: v})
		}
		line.AddSeries(series, lineData)
	}
	return line
}

// PlotDecomposition renders an html page with two charts: the series against its trend at every
// smoothing weight and the cycle at every smoothing weight.
func PlotDecomposition(w io.Writer, res *SeriesResults) error {
	if res == nil || res.Series.Len() == 0 {
		return ErrNoResults
	}

	trendNames := []string{res.Name}
	trends := [][]float64{res.Series.Y}
	cycleNames := make([]string, 0, len(res.Decompositions))
	cycles := make([][]float64, 0, len(res.Decompositions))
	for _, d := range res.Decompositions {
		trendNames = append(trendNames, fmt.Sprintf("Trend (lambda %s)", lambdaLabel(d.Lambda)))
		trends = append(trends, d.Trend)
		cycleNames = append(cycleNames, fmt.Sprintf("Cycle (lambda %s)", lambdaLabel(d.Lambda)))
		cycles = append(cycles, d.Cycle)
	}

	page := components.NewPage()
	page.SetPageTitle(res.Name)
	page.AddCharts(
		LineTSeries(res.Name+" Trend", trendNames, res.Series.T, trends),
		LineTSeries(res.Name+" Cycle", cycleNames, res.Series.T, cycles),
	)
	return page.Render(w)
}

// WritePlot renders the decomposition page to an html file at path
func WritePlot(path string, res *SeriesResults) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PlotDecomposition(file, res); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
