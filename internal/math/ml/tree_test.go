package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDecisionTree_Separable(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}, {10}, {11}, {12}}
	y := []int{0, 0, 0, 1, 1, 1}

	tree := NewDecisionTree(10, 1)
	require.NoError(t, tree.Fit(x, y))

	p, err := tree.Predict([][]float64{{2.5}, {11.5}, {-100}, {100}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, p)
	assert.Equal(t, 1, tree.Depth())
	assert.Equal(t, []float64{1}, tree.Importance())
}

func TestDecisionTree_SingleClass(t *testing.T) {
	x := [][]float64{{1, 5}, {2, 6}, {3, 7}}
	y := []int{3, 3, 3}

	tree := NewDecisionTree(10, 1)
	require.NoError(t, tree.Fit(x, y))

	p, err := tree.Predict([][]float64{{0, 0}, {9, 9}})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, p)
	assert.Equal(t, 0, tree.Depth())
	assert.Equal(t, []float64{0, 0}, tree.Importance())
}

func TestDecisionTree_SparseLabels(t *testing.T) {
	x := [][]float64{{1}, {2}, {8}, {9}}
	y := []int{7, 7, 2, 2}

	tree := NewDecisionTree(3, 1)
	require.NoError(t, tree.Fit(x, y))

	p, err := tree.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, y, p)
}

func TestDecisionTree_MaxDepth(t *testing.T) {
	// xor needs two levels
	x := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0, 0}, {0, 1}, {1, 0}, {1, 1}}
	y := []int{0, 1, 1, 0, 0, 1, 1, 0}

	shallow := NewDecisionTree(1, 1)
	require.NoError(t, shallow.Fit(x, y))
	assert.LessOrEqual(t, shallow.Depth(), 1)

	deep := NewDecisionTree(0, 1)
	require.NoError(t, deep.Fit(x, y))
	p, err := deep.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, y, p)
}

func TestDecisionTree_Importance(t *testing.T) {
	x := make([][]float64, 0)
	y := make([]int, 0)
	for i := 0; i < 20; i++ {
		x = append(x, []float64{float64(i), 42})
		y = append(y, i/10)
	}

	tree := NewDecisionTree(10, 1)
	require.NoError(t, tree.Fit(x, y))

	importance := tree.Importance()
	assert.Len(t, importance, 2)
	assert.InDelta(t, 1.0, importance[0], 1e-9)
	assert.Equal(t, 0.0, importance[1])
}

func TestDecisionTree_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	x := make([][]float64, 300)
	y := make([]int, 300)
	for i := range x {
		x[i] = []float64{r.Float64(), float64(r.Intn(5)), r.Float64()}
		y[i] = r.Intn(3)
		if x[i][0] > 0.7 {
			y[i] = 0
		}
	}

	first := NewDecisionTree(10, 1)
	require.NoError(t, first.Fit(x, y))
	second := NewDecisionTree(10, 1)
	require.NoError(t, second.Fit(x, y))

	assert.Equal(t, first.Importance(), second.Importance())
	p1, err := first.Predict(x)
	require.NoError(t, err)
	p2, err := second.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.LessOrEqual(t, first.Depth(), 10)

	sum := 0.0
	for _, v := range first.Importance() {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestDecisionTree_Errors(t *testing.T) {
	tree := NewDecisionTree(10, 1)

	_, err := tree.Predict([][]float64{{1}})
	assert.Error(t, err)

	assert.ErrorIs(t, tree.Fit(nil, nil), ErrEmptyDataset)
	assert.ErrorIs(t, tree.Fit([][]float64{{1}, {2}}, []int{1}), ErrShapeMismatch)
	assert.ErrorIs(t, tree.Fit([][]float64{{1}, {2, 3}}, []int{1, 2}), ErrShapeMismatch)

	require.NoError(t, tree.Fit([][]float64{{1}, {2}}, []int{0, 1}))
	_, err = tree.Predict([][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
