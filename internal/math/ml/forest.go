package ml

import (
	"math/rand"

	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
)

// RandomForest is a bagged ensemble of trees.
type RandomForest struct {
	trees    int
	seed     int64
	features int
	forest   *randomforest.Forest
}

// NewForest creates a forest of n trees.
func NewForest(n int, seed int64) *RandomForest {
	if n <= 0 {
		n = 100
	}
	return &RandomForest{
		trees: n,
		seed:  seed,
	}
}

// Fit trains the forest on the given samples.
func (rf *RandomForest) Fit(x [][]float64, y []int) error {
	features, err := check(x, y)
	if err != nil {
		return err
	}
	// trees draw from the global source, a single worker keeps the draws in order
	workers := randomforest.NumWorkers
	randomforest.NumWorkers = 1
	defer func() {
		randomforest.NumWorkers = workers
	}()
	rand.Seed(rf.seed)
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(rf.trees)
	rf.forest = forest
	rf.features = features
	log.Debug().Int("trees", rf.trees).Int("samples", len(x)).Msg("trained forest")
	return nil
}

// Predict returns the class with the most votes for each sample.
func (rf *RandomForest) Predict(x [][]float64) ([]int, error) {
	if rf.forest == nil {
		return nil, ErrEmptyDataset
	}
	y := make([]int, len(x))
	for i, row := range x {
		votes := rf.forest.Vote(row)
		best := 0
		for c, v := range votes {
			if v > votes[best] {
				best = c
			}
		}
		y[i] = best
	}
	return y, nil
}

// Importance returns the normalised feature importance of the forest.
func (rf *RandomForest) Importance() []float64 {
	importance := make([]float64, rf.features)
	if rf.forest != nil {
		copy(importance, rf.forest.FeatureImportance)
	}
	return normalise(importance)
}
