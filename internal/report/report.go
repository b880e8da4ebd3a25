package report

import (
	"time"

	"github.com/drakos74/census/internal/model"
	"github.com/drakos74/census/internal/table"
)

// Report is the outcome of one analysis run.
type Report struct {
	ID        string                        `json:"id"`
	Dataset   string                        `json:"dataset"`
	Started   time.Time                     `json:"started"`
	Elapsed   time.Duration                 `json:"elapsed"`
	Rows      int                           `json:"rows"`
	Columns   int                           `json:"columns"`
	Cleaning  table.Cleaning                `json:"cleaning"`
	Encodings map[model.Column]int          `json:"encodings"`
	Results   map[model.Pass][]model.Result `json:"results"`
	Scores    model.Scores                  `json:"scores"`
	Ranking   []model.Score                 `json:"ranking"`
}

// New creates an empty report for the given run.
func New(id string, dataset string, started time.Time) Report {
	return Report{
		ID:        id,
		Dataset:   dataset,
		Started:   started,
		Encodings: make(map[model.Column]int),
		Results:   make(map[model.Pass][]model.Result),
		Scores:    make(model.Scores),
		Ranking:   make([]model.Score, 0),
	}
}

// Best returns the result with the highest accuracy for the given pass.
func (r Report) Best(pass model.Pass) (model.Result, bool) {
	results := r.Results[pass]
	if len(results) == 0 {
		return model.Result{}, false
	}
	best := results[0]
	for _, result := range results[1:] {
		if result.Accuracy > best.Accuracy {
			best = result
		}
	}
	return best, true
}
