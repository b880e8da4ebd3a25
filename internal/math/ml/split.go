package ml

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// TrainTestSplit shuffles the sample indexes with the given seed and holds out
// the first ceil(testSize*n) of them for testing.
func TrainTestSplit(n int, testSize float64, seed int64) (train []int, test []int, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("test size %v must be within (0,1)", testSize)
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	if n-nTest < 1 || nTest < 1 {
		return nil, nil, fmt.Errorf("cannot split %d samples with test size %v: %w", n, testSize, ErrEmptyDataset)
	}
	perm := rand.New(rand.NewSource(uint64(seed))).Perm(n)
	return perm[nTest:], perm[:nTest], nil
}

// Take selects the rows and labels at the given indexes.
func Take(x [][]float64, y []int, idx []int) ([][]float64, []int) {
	xx := make([][]float64, len(idx))
	yy := make([]int, len(idx))
	for i, j := range idx {
		xx[i] = x[j]
		yy[i] = y[j]
	}
	return xx, yy
}
