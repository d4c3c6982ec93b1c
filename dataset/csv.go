// Package dataset reads the CSV tables the analyses consume. Missing numeric cells become NaN and
// are left for the caller to drop.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aouyang1/go-macrocycle/growth"
	"github.com/aouyang1/go-macrocycle/timedataset"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyTable    = errors.New("table has no rows")
)

// missingValues are the cell values treated as not available
var missingValues = map[string]struct{}{
	"":    {},
	".":   {},
	"NA":  {},
	"NaN": {},
	"nan": {},
}

// SeriesOptions describes the layout of a series CSV
type SeriesOptions struct {
	DateColumn  string
	ValueColumn string
	DateFormat  string
}

// NewDefaultSeriesOptions matches the layout of FRED CSV downloads
func NewDefaultSeriesOptions() *SeriesOptions {
	return &SeriesOptions{
		DateColumn:  "DATE",
		ValueColumn: "VALUE",
		DateFormat:  time.DateOnly,
	}
}

func parseValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if _, missing := missingValues[raw]; missing {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(raw, 64)
}

type table struct {
	header map[string]int
	rows   [][]string
}

func readTable(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read csv, %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyTable
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.TrimSpace(col)] = i
	}
	return &table{header: header, rows: records[1:]}, nil
}

func (t *table) index(cols ...string) ([]int, error) {
	idx := make([]int, 0, len(cols))
	for _, col := range cols {
		i, exists := t.header[col]
		if !exists {
			return nil, fmt.Errorf("%q, %w", col, ErrMissingColumn)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// LoadSeries loads a time series from a CSV file
func LoadSeries(path string, opt *SeriesOptions) (*timedataset.TimeDataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadSeries(file, opt)
}

// ReadSeries reads a time series from CSV. Rows must be in increasing date order.
func ReadSeries(r io.Reader, opt *SeriesOptions) (*timedataset.TimeDataset, error) {
	if opt == nil {
		opt = NewDefaultSeriesOptions()
	}

	tbl, err := readTable(r)
	if err != nil {
		return nil, err
	}
	idx, err := tbl.index(opt.DateColumn, opt.ValueColumn)
	if err != nil {
		return nil, err
	}

	t := make([]time.Time, 0, len(tbl.rows))
	y := make([]float64, 0, len(tbl.rows))
	for i, row := range tbl.rows {
		ts, err := time.Parse(opt.DateFormat, strings.TrimSpace(row[idx[0]]))
		if err != nil {
			return nil, fmt.Errorf("row %d, %w", i+1, err)
		}
		v, err := parseValue(row[idx[1]])
		if err != nil {
			return nil, fmt.Errorf("row %d, %w", i+1, err)
		}
		t = append(t, ts)
		y = append(y, v)
	}
	return timedataset.NewUnivariateDataset(t, y)
}

// panelColumns are the Penn World Table columns the panel reader requires
var panelColumns = []string{"country", "year", "rgdpna", "rkna", "pop", "emp", "avh", "labsh", "rtfpna"}

// LoadPanel loads a country-year panel from a CSV file
func LoadPanel(path string) ([]growth.Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadPanel(file)
}

// ReadPanel reads a country-year panel from CSV with Penn World Table column names. An optional
// countrycode column is carried over.
func ReadPanel(r io.Reader) ([]growth.Observation, error) {
	tbl, err := readTable(r)
	if err != nil {
		return nil, err
	}
	idx, err := tbl.index(panelColumns...)
	if err != nil {
		return nil, err
	}
	codeIdx, hasCode := tbl.header["countrycode"]

	panel := make([]growth.Observation, 0, len(tbl.rows))
	for i, row := range tbl.rows {
		year, err := strconv.Atoi(strings.TrimSpace(row[idx[1]]))
		if err != nil {
			return nil, fmt.Errorf("row %d year, %w", i+1, err)
		}

		vals := make([]float64, 0, len(panelColumns)-2)
		for j, col := range panelColumns[2:] {
			v, err := parseValue(row[idx[j+2]])
			if err != nil {
				return nil, fmt.Errorf("row %d %s, %w", i+1, col, err)
			}
			vals = append(vals, v)
		}

		o := growth.Observation{
			Country: strings.TrimSpace(row[idx[0]]),
			Year:    year,
			RGDPNA:  vals[0],
			RKNA:    vals[1],
			Pop:     vals[2],
			Emp:     vals[3],
			Avh:     vals[4],
			Labsh:   vals[5],
			RTFPNA:  vals[6],
		}
		if hasCode {
			o.CountryCode = strings.TrimSpace(row[codeIdx])
		}
		panel = append(panel, o)
	}
	return panel, nil
}
