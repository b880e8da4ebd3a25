package analysis

import (
	"fmt"

	"github.com/drakos74/census/internal/math/ml"
	"github.com/drakos74/census/internal/model"
	"github.com/drakos74/census/internal/table"
	"github.com/rs/zerolog/log"
)

// Evaluator trains one classifier per target and scores it on a held out split.
type Evaluator struct {
	model    ml.Config
	testSize float64
}

// NewEvaluator creates an evaluator for the given classifier config.
func NewEvaluator(cfg ml.Config, testSize float64) *Evaluator {
	return &Evaluator{
		model:    cfg,
		testSize: testSize,
	}
}

// Evaluate predicts the target from the given features.
func (e *Evaluator) Evaluate(pass model.Pass, t table.Table, target model.Column, features []model.Column) (model.Result, error) {
	x, err := table.Features(t, features)
	if err != nil {
		return model.Result{}, fmt.Errorf("could not build features for '%s': %w", target, err)
	}
	y, err := table.Labels(t, target)
	if err != nil {
		return model.Result{}, fmt.Errorf("could not build labels for '%s': %w", target, err)
	}
	meta, err := ml.Evaluate(e.model, x, y, e.testSize)
	if err != nil {
		return model.Result{}, fmt.Errorf("could not evaluate '%s': %w", target, err)
	}

	importance := make([]model.Importance, len(features))
	for i, f := range features {
		importance[i] = model.Importance{
			Feature: f,
			Value:   meta.Features[i],
		}
	}
	fs := make([]model.Column, len(features))
	copy(fs, features)
	result := model.Result{
		Pass:       pass,
		Target:     target,
		Features:   fs,
		Accuracy:   meta.Accuracy,
		Importance: importance,
		Train:      meta.Train,
		Test:       meta.Test,
	}
	log.Debug().
		Str("pass", string(pass)).
		Str("target", string(target)).
		Int("features", len(features)).
		Float64("score", result.Accuracy).
		Msg("evaluated target")
	return result, nil
}

// AllOther predicts each target from every other column of the table.
func (e *Evaluator) AllOther(t table.Table, targets []model.Column) ([]model.Result, error) {
	results := make([]model.Result, 0, len(targets))
	for _, target := range targets {
		features := model.Without(t.Schema.Columns(), target)
		result, err := e.Evaluate(model.AllOther, t, target, features)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// NumericOnly predicts each target from the numeric columns only.
func (e *Evaluator) NumericOnly(t table.Table, targets []model.Column, numeric []model.Column) ([]model.Result, error) {
	results := make([]model.Result, 0, len(targets))
	for _, target := range targets {
		result, err := e.Evaluate(model.NumericOnly, t, target, numeric)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Forward starts from the numeric columns and adds one ranked column at a time
// as a feature, retraining the classifier of the target after each addition.
func (e *Evaluator) Forward(t table.Table, target model.Column, numeric []model.Column, ranking []model.Score) ([]model.Result, error) {
	features := make([]model.Column, len(numeric), len(numeric)+len(ranking))
	copy(features, numeric)
	results := make([]model.Result, 0, len(ranking))
	for _, score := range ranking {
		if score.Target == target {
			continue
		}
		features = append(features, score.Target)
		result, err := e.Evaluate(model.Forward, t, target, features)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
