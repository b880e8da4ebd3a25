package ml

import (
	"fmt"
	"strconv"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Score compares the predicted labels against the reference ones.
// It returns the accuracy and a per class summary.
func Score(reference, predicted []int) (float64, string, error) {
	if len(reference) == 0 {
		return 0, "", ErrEmptyDataset
	}
	if len(reference) != len(predicted) {
		return 0, "", fmt.Errorf("%d references for %d predictions: %w", len(reference), len(predicted), ErrShapeMismatch)
	}
	ref, err := labelGrid(reference)
	if err != nil {
		return 0, "", err
	}
	gen, err := labelGrid(predicted)
	if err != nil {
		return 0, "", err
	}
	cf, err := evaluation.GetConfusionMatrix(ref, gen)
	if err != nil {
		return 0, "", fmt.Errorf("could not get confusion matrix: %w", err)
	}
	return evaluation.GetAccuracy(cf), evaluation.GetSummary(cf), nil
}

// labelGrid wraps the labels in a single column instance grid with a class attribute.
func labelGrid(labels []int) (*base.DenseInstances, error) {
	grid := base.NewDenseInstances()
	attr := base.NewCategoricalAttribute()
	attr.SetName("class")
	spec := grid.AddAttribute(attr)
	if err := grid.AddClassAttribute(attr); err != nil {
		return nil, fmt.Errorf("could not set class attribute: %w", err)
	}
	if err := grid.Extend(len(labels)); err != nil {
		return nil, fmt.Errorf("could not allocate %d rows: %w", len(labels), err)
	}
	for i, l := range labels {
		grid.Set(spec, i, attr.GetSysValFromString(strconv.Itoa(l)))
	}
	return grid, nil
}
