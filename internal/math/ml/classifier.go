package ml

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyDataset is returned when there are not enough samples to train and test.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrShapeMismatch is returned when samples and labels do not line up.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrUnknownClassifier is returned for an unsupported classifier kind.
	ErrUnknownClassifier = errors.New("unknown classifier")
)

const (
	// TreeClassifier is a single depth bounded decision tree.
	TreeClassifier = "tree"
	// ForestClassifier is a random forest.
	ForestClassifier = "forest"
)

// Classifier is a model that learns class labels from numeric features.
type Classifier interface {
	Fit(x [][]float64, y []int) error
	Predict(x [][]float64) ([]int, error)
	Importance() []float64
}

// Config describes the classifier to build.
type Config struct {
	Classifier string `json:"classifier" yaml:"classifier"`
	MaxDepth   int    `json:"max_depth" yaml:"max_depth"`
	Trees      int    `json:"trees" yaml:"trees"`
	Seed       int64  `json:"seed" yaml:"seed"`
}

// New creates a fresh classifier for the given config.
func New(cfg Config) (Classifier, error) {
	switch cfg.Classifier {
	case TreeClassifier, "":
		return NewDecisionTree(cfg.MaxDepth, cfg.Seed), nil
	case ForestClassifier:
		return NewForest(cfg.Trees, cfg.Seed), nil
	}
	return nil, fmt.Errorf("'%s': %w", cfg.Classifier, ErrUnknownClassifier)
}

func check(x [][]float64, y []int) (int, error) {
	if len(x) == 0 {
		return 0, ErrEmptyDataset
	}
	if len(x) != len(y) {
		return 0, fmt.Errorf("%d samples for %d labels: %w", len(x), len(y), ErrShapeMismatch)
	}
	features := len(x[0])
	for i, row := range x {
		if len(row) != features {
			return 0, fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), features, ErrShapeMismatch)
		}
	}
	return features, nil
}

// normalise scales the values to sum up to 1, or leaves them at 0.
func normalise(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sum := floats.Sum(out)
	if sum > 0 {
		floats.Scale(1/sum, out)
	}
	return out
}
