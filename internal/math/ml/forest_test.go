package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomForest(t *testing.T) {
	x := make([][]float64, 0)
	y := make([]int, 0)
	for i := 0; i < 100; i++ {
		x = append(x, []float64{float64(i), float64(i % 7)})
		y = append(y, i/50)
	}

	forest := NewForest(10, 1)
	require.NoError(t, forest.Fit(x, y))

	p, err := forest.Predict(x)
	require.NoError(t, err)
	assert.Len(t, p, len(x))
	for _, c := range p {
		assert.Contains(t, []int{0, 1}, c)
	}

	importance := forest.Importance()
	assert.Len(t, importance, 2)
	for _, v := range importance {
		assert.GreaterOrEqual(t, v, 0.0)
	}

	assert.ErrorIs(t, NewForest(10, 1).Fit(nil, nil), ErrEmptyDataset)
}

func TestRandomForest_Deterministic(t *testing.T) {
	x := make([][]float64, 0)
	y := make([]int, 0)
	for i := 0; i < 120; i++ {
		x = append(x, []float64{float64(i % 13), float64(i % 7), float64(i % 5)})
		y = append(y, (i%13+i%5)%3)
	}

	fit := func() ([]int, []float64) {
		forest := NewForest(20, 7)
		require.NoError(t, forest.Fit(x, y))
		p, err := forest.Predict(x)
		require.NoError(t, err)
		return p, forest.Importance()
	}

	firstPrediction, firstImportance := fit()
	secondPrediction, secondImportance := fit()
	assert.Equal(t, firstPrediction, secondPrediction)
	assert.Equal(t, firstImportance, secondImportance)
}
