package ml

import (
	"github.com/rs/zerolog/log"
)

// Metadata describes a trained and tested classifier.
type Metadata struct {
	Train    int
	Test     int
	Features []float64
	Accuracy float64
	Summary  string
}

// Evaluate splits the samples, trains the classifier on the train part and scores it on the test part.
func Evaluate(cfg Config, x [][]float64, y []int, testSize float64) (Metadata, error) {
	if _, err := check(x, y); err != nil {
		return Metadata{}, err
	}
	train, test, err := TrainTestSplit(len(x), testSize, cfg.Seed)
	if err != nil {
		return Metadata{}, err
	}
	xTrain, yTrain := Take(x, y, train)
	xTest, yTest := Take(x, y, test)

	clf, err := New(cfg)
	if err != nil {
		return Metadata{}, err
	}
	if err := clf.Fit(xTrain, yTrain); err != nil {
		return Metadata{}, err
	}
	predictions, err := clf.Predict(xTest)
	if err != nil {
		return Metadata{}, err
	}
	accuracy, summary, err := Score(yTest, predictions)
	if err != nil {
		return Metadata{}, err
	}
	log.Trace().Str("summary", summary).Msg("classifier performance")
	return Metadata{
		Train:    len(train),
		Test:     len(test),
		Features: clf.Importance(),
		Accuracy: accuracy,
		Summary:  summary,
	}, nil
}
