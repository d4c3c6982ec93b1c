package timedataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateT(t *testing.T) {
	start := time.Date(1955, 1, 1, 0, 0, 0, 0, time.UTC)

	res := GenerateT(5, start, 3)
	assert.Len(t, res, 5)
	assert.Equal(t, start, res[0])
	assert.Equal(t, time.Date(1956, 1, 1, 0, 0, 0, 0, time.UTC), res[4])

	_, err := NewUnivariateDataset(res, GenerateConstY(5, 1))
	require.Nil(t, err)
}

func TestSeries(t *testing.T) {
	numPnts := 4
	s := GenerateConstY(numPnts, 1)

	res := s.Add(GenerateLinearY(numPnts, 2, 0.5))
	assert.Equal(t, Series{3, 3.5, 4, 4.5}, res)

	wave := GenerateWaveY(numPnts, 2, 4, 0)
	assert.InDeltaSlice(t, []float64{0, 2, 0, -2}, wave, 1e-12)
}

func TestGenerateNoiseReproducible(t *testing.T) {
	a := GenerateNoise(10, 1.5, 7)
	b := GenerateNoise(10, 1.5, 7)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, GenerateNoise(10, 1.5, 8))
}
