package growth

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aouyang1/go-macrocycle/util"
	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/stat"
)

// AverageCountry labels the synthetic cross-country average row
const AverageCountry = "Average"

// Table holds the per-country rows sorted by country name, their unweighted average and the
// countries that could not be accounted for along with the reason.
type Table struct {
	Rows    []Row            `json:"rows"`
	Average Row              `json:"average"`
	Skipped map[string]error `json:"-"`
}

// Account groups the panel by country and runs Compute on each group. A country that fails is
// recorded in Table.Skipped and does not stop the others. An error is only returned when no
// country produced a row.
func Account(panel []Observation) (*Table, error) {
	if len(panel) == 0 {
		return nil, ErrNoObservations
	}

	byCountry := make(map[string][]Observation)
	for _, o := range panel {
		byCountry[o.Country] = append(byCountry[o.Country], o)
	}

	countries := make([]string, 0, len(byCountry))
	for country := range byCountry {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	tbl := &Table{
		Rows:    make([]Row, 0, len(countries)),
		Skipped: make(map[string]error),
	}
	for _, country := range countries {
		row, err := Compute(byCountry[country])
		if err != nil {
			tbl.Skipped[country] = err
			continue
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	if len(tbl.Rows) == 0 {
		return tbl, fmt.Errorf("%d countries skipped, %w", len(tbl.Skipped), ErrNoResults)
	}
	tbl.Average = Average(tbl.Rows)
	return tbl, nil
}

// Average returns the unweighted mean of each metric across rows. An undefined share in any row
// makes the averaged share undefined as well.
func Average(rows []Row) Row {
	cols := make([][]float64, 5)
	for i := range cols {
		cols[i] = make([]float64, 0, len(rows))
	}
	for _, r := range rows {
		cols[0] = append(cols[0], r.GrowthRate)
		cols[1] = append(cols[1], r.TFPGrowth)
		cols[2] = append(cols[2], r.CapitalDeepening)
		cols[3] = append(cols[3], r.TFPShare)
		cols[4] = append(cols[4], r.CapitalShare)
	}

	means := make([]float64, len(cols))
	for i, col := range cols {
		if len(col) == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] = stat.Mean(col, nil)
	}

	return Row{
		Country:          AverageCountry,
		GrowthRate:       means[0],
		TFPGrowth:        means[1],
		CapitalDeepening: means[2],
		TFPShare:         means[3],
		CapitalShare:     means[4],
	}
}

// YearRange returns the earliest start year and latest end year across the rows
func (t *Table) YearRange() (int, int) {
	var start, end int
	for i, r := range t.Rows {
		if i == 0 || r.StartYear < start {
			start = r.StartYear
		}
		if r.EndYear > end {
			end = r.EndYear
		}
	}
	return start, end
}

// TablePrint writes the rows and the average rounded to two decimals
func (t *Table) TablePrint(w io.Writer, prefix, indent string) error {
	start, end := t.YearRange()
	if _, err := fmt.Fprintf(w, "%s%sGrowth Accounting: %d-%d\n", prefix, util.IndentExpand(indent, 0), start, end); err != nil {
		return err
	}

	rowFmt := "%s%s%-20s %12s %12s %18s %10s %14s\n"
	if _, err := fmt.Fprintf(w, rowFmt, prefix, util.IndentExpand(indent, 1),
		"Country", "Growth Rate", "TFP Growth", "Capital Deepening", "TFP Share", "Capital Share"); err != nil {
		return err
	}

	rows := append(append(make([]Row, 0, len(t.Rows)+1), t.Rows...), t.Average)
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, rowFmt, prefix, util.IndentExpand(indent, 1),
			r.Country,
			util.FormatFloat(r.GrowthRate, 2),
			util.FormatFloat(r.TFPGrowth, 2),
			util.FormatFloat(r.CapitalDeepening, 2),
			util.FormatFloat(r.TFPShare, 2),
			util.FormatFloat(r.CapitalShare, 2),
		); err != nil {
			return err
		}
	}

	if len(t.Skipped) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s%sSkipped:\n", prefix, util.IndentExpand(indent, 1)); err != nil {
		return err
	}
	skipped := make([]string, 0, len(t.Skipped))
	for country := range t.Skipped {
		skipped = append(skipped, country)
	}
	sort.Strings(skipped)
	for _, country := range skipped {
		if _, err := fmt.Fprintf(w, "%s%s%s: %s\n", prefix, util.IndentExpand(indent, 2), country, t.Skipped[country]); err != nil {
			return err
		}
	}
	return nil
}

type rowJSON struct {
	Country   string `json:"country"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`

	GrowthRate       *float64 `json:"growth_rate"`
	TFPGrowth        *float64 `json:"tfp_growth"`
	CapitalDeepening *float64 `json:"capital_deepening"`
	TFPShare         *float64 `json:"tfp_share"`
	CapitalShare     *float64 `json:"capital_share"`
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON encodes undefined metrics as null
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(rowJSON{
		Country:          r.Country,
		StartYear:        r.StartYear,
		EndYear:          r.EndYear,
		GrowthRate:       finiteOrNil(r.GrowthRate),
		TFPGrowth:        finiteOrNil(r.TFPGrowth),
		CapitalDeepening: finiteOrNil(r.CapitalDeepening),
		TFPShare:         finiteOrNil(r.TFPShare),
		CapitalShare:     finiteOrNil(r.CapitalShare),
	})
}

// UnmarshalJSON decodes null metrics as UndefinedShare
func (r *Row) UnmarshalJSON(data []byte) error {
	var raw rowJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	orNaN := func(v *float64) float64 {
		if v == nil {
			return UndefinedShare
		}
		return *v
	}
	*r = Row{
		Country:          raw.Country,
		StartYear:        raw.StartYear,
		EndYear:          raw.EndYear,
		GrowthRate:       orNaN(raw.GrowthRate),
		TFPGrowth:        orNaN(raw.TFPGrowth),
		CapitalDeepening: orNaN(raw.CapitalDeepening),
		TFPShare:         orNaN(raw.TFPShare),
		CapitalShare:     orNaN(raw.CapitalShare),
	}
	return nil
}
