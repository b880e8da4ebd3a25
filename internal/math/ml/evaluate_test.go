package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	accuracy, summary, err := Score([]int{0, 1, 1, 0}, []int{0, 1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, accuracy, 1e-9)
	assert.NotEmpty(t, summary)

	accuracy, _, err = Score([]int{4, 4}, []int{4, 4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, accuracy)
}

func TestScore_Errors(t *testing.T) {
	_, _, err := Score(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, _, err = Score([]int{1, 2}, []int{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestEvaluate(t *testing.T) {
	x := make([][]float64, 0)
	y := make([]int, 0)
	for i := 0; i < 50; i++ {
		v := float64(i)
		if i >= 25 {
			v += 100
		}
		x = append(x, []float64{v, float64(i % 3)})
		y = append(y, i/25)
	}

	cfg := Config{Classifier: TreeClassifier, MaxDepth: 10, Seed: 1}
	meta, err := Evaluate(cfg, x, y, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 40, meta.Train)
	assert.Equal(t, 10, meta.Test)
	assert.Equal(t, 1.0, meta.Accuracy)
	assert.Len(t, meta.Features, 2)

	again, err := Evaluate(cfg, x, y, 0.2)
	require.NoError(t, err)
	assert.Equal(t, meta.Accuracy, again.Accuracy)
	assert.Equal(t, meta.Features, again.Features)
}

func TestEvaluate_SingleClass(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}, {4}, {5}}
	y := []int{0, 0, 0, 0, 0}

	meta, err := Evaluate(Config{MaxDepth: 10, Seed: 1}, x, y, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, meta.Accuracy)
	assert.Equal(t, []float64{0}, meta.Features)
}

func TestNew(t *testing.T) {
	c, err := New(Config{Classifier: TreeClassifier})
	require.NoError(t, err)
	assert.IsType(t, &DecisionTree{}, c)

	c, err = New(Config{Classifier: ForestClassifier, Trees: 10})
	require.NoError(t, err)
	assert.IsType(t, &RandomForest{}, c)

	_, err = New(Config{Classifier: "svm"})
	assert.ErrorIs(t, err, ErrUnknownClassifier)
}
