package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	macrocycle "github.com/aouyang1/go-macrocycle"
	"github.com/aouyang1/go-macrocycle/config"
	"github.com/aouyang1/go-macrocycle/dataset"
	"github.com/aouyang1/go-macrocycle/growth"
	"github.com/aouyang1/go-macrocycle/hpfilter"
	"github.com/aouyang1/go-macrocycle/stats"
	"github.com/aouyang1/go-macrocycle/util"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

var errNothingProduced = errors.New("no series or growth table could be produced")

type cycleCorrelation struct {
	A      string                   `json:"a"`
	B      string                   `json:"b"`
	Lambda string                   `json:"lambda"`
	Result *stats.CorrelationResult `json:"result"`
}

type report struct {
	Series       []*macrocycle.SeriesResults `json:"series,omitempty"`
	Correlations []cycleCorrelation          `json:"correlations,omitempty"`
	Growth       *growth.Table               `json:"growth,omitempty"`
}

func run(cfg *config.Config, logger zerolog.Logger, w io.Writer) error {
	solver, err := hpfilter.ParseSolver(cfg.HPFilter.Solver)
	if err != nil {
		return err
	}
	opt := &macrocycle.Options{
		Lambdas:      cfg.HPFilter.Lambdas,
		Solver:       solver,
		LogTransform: !cfg.HPFilter.RawLevels,
	}

	var rep report
	for _, sc := range cfg.Series {
		res, err := analyzeSeries(sc, opt)
		if err != nil {
			logger.Warn().Err(err).Str("series", sc.Name).Msg("skipping series")
			continue
		}
		for lambda, ferr := range res.Failed {
			logger.Warn().Err(ferr).Str("series", sc.Name).Float64("lambda", lambda).Msg("lambda failed")
		}
		logger.Info().
			Str("series", sc.Name).
			Int("observations", res.Series.Len()).
			Int("decompositions", len(res.Decompositions)).
			Msg("decomposed series")

		if err := res.TablePrint(w, "", "  "); err != nil {
			return err
		}
		rep.Series = append(rep.Series, res)
	}

	rep.Correlations = compareCycles(rep.Series, cfg.Correlation.Lambda, logger)
	if err := printCorrelations(w, rep.Correlations); err != nil {
		return err
	}

	if cfg.Growth != nil {
		tbl, err := accountGrowth(cfg.Growth)
		if tbl != nil {
			for country, serr := range tbl.Skipped {
				logger.Warn().Err(serr).Str("country", country).Msg("skipping country")
			}
		}
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.Growth.Path).Msg("skipping growth accounting")
		} else {
			if err := tbl.TablePrint(w, "", "  "); err != nil {
				return err
			}
			rep.Growth = tbl
		}
	}

	if len(rep.Series) == 0 && rep.Growth == nil {
		return errNothingProduced
	}

	if cfg.Output.JSONPath != "" {
		if err := writeJSON(cfg.Output.JSONPath, rep); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Output.JSONPath).Msg("wrote results")
	}
	if cfg.Output.PlotDir != "" {
		if err := os.MkdirAll(cfg.Output.PlotDir, 0o755); err != nil {
			return err
		}
		for _, res := range rep.Series {
			path := filepath.Join(cfg.Output.PlotDir, res.Name+".html")
			if err := macrocycle.WritePlot(path, res); err != nil {
				logger.Warn().Err(err).Str("series", res.Name).Msg("unable to plot series")
				continue
			}
			logger.Info().Str("path", path).Msg("wrote plot")
		}
	}
	return nil
}

func analyzeSeries(sc config.SeriesConfig, opt *macrocycle.Options) (*macrocycle.SeriesResults, error) {
	ts, err := dataset.LoadSeries(sc.Path, &dataset.SeriesOptions{
		DateColumn:  sc.DateColumn,
		ValueColumn: sc.ValueColumn,
		DateFormat:  sc.DateFormat,
	})
	if err != nil {
		return nil, err
	}
	return macrocycle.AnalyzeSeries(sc.Name, ts.T, ts.Y, opt)
}

// compareCycles correlates every pair of series in configuration order
func compareCycles(series []*macrocycle.SeriesResults, lambda float64, logger zerolog.Logger) []cycleCorrelation {
	var res []cycleCorrelation
	for i := 0; i < len(series); i++ {
		for j := i + 1; j < len(series); j++ {
			corr, err := macrocycle.CompareCycles(series[i], series[j], lambda)
			if err != nil {
				logger.Warn().Err(err).
					Str("a", series[i].Name).
					Str("b", series[j].Name).
					Msg("skipping cycle correlation")
				continue
			}
			res = append(res, cycleCorrelation{
				A:      series[i].Name,
				B:      series[j].Name,
				Lambda: strconv.FormatFloat(lambda, 'g', -1, 64),
				Result: corr,
			})
		}
	}
	return res
}

func printCorrelations(w io.Writer, corrs []cycleCorrelation) error {
	if len(corrs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "Cycle Correlations (lambda %s):\n", corrs[0].Lambda); err != nil {
		return err
	}
	for _, c := range corrs {
		if _, err := fmt.Fprintf(w, "  %s ~ %s: %s over %d observations\n",
			c.A, c.B, util.FormatFloat(c.Result.Coefficient, 4), c.Result.N); err != nil {
			return err
		}
	}
	return nil
}

func accountGrowth(gc *config.GrowthConfig) (*growth.Table, error) {
	panel, err := dataset.LoadPanel(gc.Path)
	if err != nil {
		return nil, err
	}
	countries := gc.Countries
	if len(countries) == 0 {
		countries = growth.OECDCountries
	}
	filtered := growth.Filter{
		Countries: countries,
		StartYear: gc.StartYear,
		EndYear:   gc.EndYear,
	}.Apply(panel)
	return growth.Account(filtered)
}

func writeJSON(path string, rep report) error {
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode results, %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}
