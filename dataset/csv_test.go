package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aouyang1/go-macrocycle/growth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeries(t *testing.T) {
	testData := map[string]struct {
		raw       string
		opt       *SeriesOptions
		expectedT []time.Time
		expectedY []float64
		err       error
	}{
		"fred layout": {
			raw: "DATE,VALUE\n1955-01-01,100.5\n1955-04-01,.\n1955-07-01,101.25\n",
			expectedT: []time.Time{
				time.Date(1955, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1955, 4, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1955, 7, 1, 0, 0, 0, 0, time.UTC),
			},
			expectedY: []float64{100.5, math.NaN(), 101.25},
		},
		"custom columns": {
			raw: "year,other,gdp\n1990,x,1\n1991,y,2\n",
			opt: &SeriesOptions{
				DateColumn:  "year",
				ValueColumn: "gdp",
				DateFormat:  "2006",
			},
			expectedT: []time.Time{
				time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			expectedY: []float64{1, 2},
		},
		"missing column": {
			raw: "DATE,GDP\n1955-01-01,1\n",
			err: ErrMissingColumn,
		},
		"header only": {
			raw: "DATE,VALUE\n",
			err: ErrEmptyTable,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ts, err := ReadSeries(strings.NewReader(td.raw), td.opt)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.expectedT, ts.T)
			require.Len(t, ts.Y, len(td.expectedY))
			for i, v := range td.expectedY {
				if math.IsNaN(v) {
					assert.True(t, math.IsNaN(ts.Y[i]))
					continue
				}
				assert.Equal(t, v, ts.Y[i])
			}
		})
	}
}

func TestReadSeriesBadValue(t *testing.T) {
	_, err := ReadSeries(strings.NewReader("DATE,VALUE\n1955-01-01,abc\n"), nil)
	assert.NotNil(t, err)

	_, err = ReadSeries(strings.NewReader("DATE,VALUE\n01/01/1955,1\n"), nil)
	assert.NotNil(t, err)
}

const panelCSV = `countrycode,country,year,rgdpna,rkna,pop,emp,avh,labsh,rtfpna
FRA,France,1990,100,200,56,10,1600,0.6,50
FRA,France,1991,121,242,56.2,10,1590,NA,55
JPN,Japan,1990,300,900,123,60,2000,0.55,0.9
`

func TestReadPanel(t *testing.T) {
	panel, err := ReadPanel(strings.NewReader(panelCSV))
	require.Nil(t, err)
	require.Len(t, panel, 3)

	assert.Equal(t, growth.Observation{
		Country:     "France",
		CountryCode: "FRA",
		Year:        1990,
		RGDPNA:      100,
		RKNA:        200,
		Pop:         56,
		Emp:         10,
		Avh:         1600,
		Labsh:       0.6,
		RTFPNA:      50,
	}, panel[0])
	assert.True(t, math.IsNaN(panel[1].Labsh))
	assert.False(t, panel[1].Complete())
	assert.Equal(t, "Japan", panel[2].Country)

	filtered := growth.Filter{}.Apply(panel)
	assert.Len(t, filtered, 2)
}

func TestReadPanelMissingColumn(t *testing.T) {
	_, err := ReadPanel(strings.NewReader("country,year,rgdpna\nFrance,1990,1\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	seriesPath := filepath.Join(dir, "series.csv")
	panelPath := filepath.Join(dir, "panel.csv")
	require.Nil(t, os.WriteFile(seriesPath, []byte("DATE,VALUE\n2000-01-01,1\n2000-04-01,2\n"), 0o644))
	require.Nil(t, os.WriteFile(panelPath, []byte(panelCSV), 0o644))

	ts, err := LoadSeries(seriesPath, nil)
	require.Nil(t, err)
	assert.Equal(t, 2, ts.Len())

	panel, err := LoadPanel(panelPath)
	require.Nil(t, err)
	assert.Len(t, panel, 3)

	_, err = LoadSeries(filepath.Join(dir, "missing.csv"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
