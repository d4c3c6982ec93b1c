package growth

import (
	"bytes"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPanel() []Observation {
	return []Observation{
		obs("Testland", 2000, 100, 10, 200, 0.6, 50),
		obs("Testland", 2002, 121, 10, 242, 0.6, 55),
		obs("Austria", 2000, 200, 20, 300, 0.7, 10),
		obs("Austria", 2001, 210, 20, 330, 0.65, 10.1),
		obs("Austria", 2004, 230, 21, 360, 0.66, 10.4),
		obs("Lonely", 2001, 50, 5, 80, 0.6, 7),
	}
}

func TestAccount(t *testing.T) {
	panel := testPanel()
	tbl, err := Account(panel)
	require.Nil(t, err)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Austria", tbl.Rows[0].Country)
	assert.Equal(t, "Testland", tbl.Rows[1].Country)

	require.Len(t, tbl.Skipped, 1)
	assert.ErrorIs(t, tbl.Skipped["Lonely"], ErrNoResultForCountry)

	austria, err := Compute(panel[2:5])
	require.Nil(t, err)
	testland, err := Compute(panel[0:2])
	require.Nil(t, err)
	assertRow(t, austria, tbl.Rows[0])
	assertRow(t, testland, tbl.Rows[1])

	expectedAvg := Row{
		Country:          AverageCountry,
		GrowthRate:       (austria.GrowthRate + testland.GrowthRate) / 2,
		TFPGrowth:        (austria.TFPGrowth + testland.TFPGrowth) / 2,
		CapitalDeepening: (austria.CapitalDeepening + testland.CapitalDeepening) / 2,
		TFPShare:         (austria.TFPShare + testland.TFPShare) / 2,
		CapitalShare:     (austria.CapitalShare + testland.CapitalShare) / 2,
	}
	assertRow(t, expectedAvg, tbl.Average)

	start, end := tbl.YearRange()
	assert.Equal(t, 2000, start)
	assert.Equal(t, 2004, end)
}

func TestAccountNoResults(t *testing.T) {
	_, err := Account(nil)
	assert.ErrorIs(t, err, ErrNoObservations)

	tbl, err := Account([]Observation{
		obs("A", 2000, 1, 1, 1, 0.5, 1),
		obs("B", 2000, 1, 1, 1, 0.5, 1),
	})
	assert.ErrorIs(t, err, ErrNoResults)
	require.NotNil(t, tbl)
	assert.Len(t, tbl.Skipped, 2)
}

func TestAverage(t *testing.T) {
	testData := map[string]struct {
		rows     []Row
		expected Row
	}{
		"no rows": {
			expected: Row{
				Country:          AverageCountry,
				GrowthRate:       math.NaN(),
				TFPGrowth:        math.NaN(),
				CapitalDeepening: math.NaN(),
				TFPShare:         math.NaN(),
				CapitalShare:     math.NaN(),
			},
		},
		"rows": {
			rows: []Row{
				{Country: "A", GrowthRate: 1, TFPGrowth: 2, CapitalDeepening: 3, TFPShare: 4, CapitalShare: 5},
				{Country: "B", GrowthRate: 3, TFPGrowth: 4, CapitalDeepening: 5, TFPShare: 6, CapitalShare: 7},
				{Country: "C", GrowthRate: 5, TFPGrowth: 0, CapitalDeepening: 1, TFPShare: 2, CapitalShare: 0},
			},
			expected: Row{
				Country:          AverageCountry,
				GrowthRate:       3,
				TFPGrowth:        2,
				CapitalDeepening: 3,
				TFPShare:         4,
				CapitalShare:     4,
			},
		},
		"undefined share propagates": {
			rows: []Row{
				{Country: "A", GrowthRate: 2, TFPGrowth: 1, CapitalDeepening: 1, TFPShare: 0.5, CapitalShare: 0.5},
				{Country: "B", GrowthRate: 0, TFPGrowth: 1, CapitalDeepening: 1, TFPShare: UndefinedShare, CapitalShare: UndefinedShare},
			},
			expected: Row{
				Country:          AverageCountry,
				GrowthRate:       1,
				TFPGrowth:        1,
				CapitalDeepening: 1,
				TFPShare:         UndefinedShare,
				CapitalShare:     UndefinedShare,
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assertRow(t, td.expected, Average(td.rows))
		})
	}
}

func TestTablePrint(t *testing.T) {
	tbl, err := Account(testPanel())
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, tbl.TablePrint(&buf, "", "  "))

	out := buf.String()
	assert.Contains(t, out, "Growth Accounting: 2000-2004")
	assert.Contains(t, out, "Testland")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "4.88")
	assert.Contains(t, out, AverageCountry)
	assert.Contains(t, out, "Lonely")
}

func TestRowJSON(t *testing.T) {
	row := Row{
		Country:          "Flatland",
		StartYear:        2000,
		EndYear:          2005,
		GrowthRate:       0,
		TFPGrowth:        0.79,
		CapitalDeepening: 0.77,
		TFPShare:         UndefinedShare,
		CapitalShare:     UndefinedShare,
	}

	b, err := json.Marshal(row)
	require.Nil(t, err)
	assert.Contains(t, string(b), `"tfp_share":null`)
	assert.Contains(t, string(b), `"growth_rate":0`)

	var decoded Row
	require.Nil(t, json.Unmarshal(b, &decoded))
	assertRow(t, row, decoded)
}
