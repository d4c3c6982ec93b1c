package macrocycle

import (
	"errors"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesResultsLambda(t *testing.T) {
	boom := errors.New("boom")
	res := &SeriesResults{
		Decompositions: []LambdaResult{{Lambda: 100}, {Lambda: 1600}},
		Failed:         map[float64]error{10: boom},
	}

	d, err := res.Lambda(1600)
	require.Nil(t, err)
	assert.Equal(t, 1600.0, d.Lambda)

	_, err = res.Lambda(10)
	assert.ErrorIs(t, err, boom)

	_, err = res.Lambda(5)
	assert.ErrorIs(t, err, ErrLambdaNotFound)

	var empty *SeriesResults
	_, err = empty.Lambda(100)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestLambdaResultMarshalJSON(t *testing.T) {
	testData := map[string]struct {
		lambda   float64
		expected any
	}{
		"finite":   {lambda: 1600, expected: 1600.0},
		"infinite": {lambda: math.Inf(1), expected: "+Inf"},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(LambdaResult{
				Lambda: td.lambda,
				Trend:  []float64{1, 2},
				Cycle:  []float64{0.5, -0.5},
			})
			require.Nil(t, err)

			var out map[string]any
			require.Nil(t, json.Unmarshal(b, &out))
			assert.Equal(t, td.expected, out["lambda"])
			assert.Equal(t, []any{1.0, 2.0}, out["trend"])
			assert.Contains(t, out, "cycle_summary")
		})
	}
}

func TestSeriesResultsMarshalJSON(t *testing.T) {
	tSeries, y := generateSeries(12, seriesStart, 8)
	res, err := AnalyzeSeries("gdp", tSeries, y, &Options{Lambdas: []float64{100, math.Inf(1)}, LogTransform: true})
	require.Nil(t, err)

	b, err := json.Marshal(res)
	require.Nil(t, err)

	var out map[string]any
	require.Nil(t, json.Unmarshal(b, &out))
	assert.Equal(t, "gdp", out["name"])
	assert.Equal(t, true, out["log_transform"])
	assert.NotContains(t, out, "Failed")

	decomps, ok := out["decompositions"].([]any)
	require.True(t, ok)
	require.Len(t, decomps, 2)
	assert.Equal(t, "+Inf", decomps[1].(map[string]any)["lambda"])
}
