package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/drakos74/census/internal/model"
	"github.com/olekukonko/tablewriter"
)

// Render writes the summary tables of the report.
func Render(w io.Writer, r Report) {
	renderScores(w, r)
	if forward, ok := r.Results[model.Forward]; ok && len(forward) > 0 {
		renderForward(w, forward)
	}
}

func renderScores(w io.Writer, r Report) {
	all := model.NewScores(r.Results[model.AllOther])
	numeric := model.NewScores(r.Results[model.NumericOnly])

	targets := make([]model.Column, 0)
	seen := make(map[model.Column]bool)
	for _, scores := range []model.Scores{all, numeric} {
		for t := range scores {
			if !seen[t] {
				seen[t] = true
				targets = append(targets, t)
			}
		}
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i] < targets[j]
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"target", "classes", "all other", "numeric only"})
	for _, t := range targets {
		table.Append([]string{
			string(t),
			fmt.Sprintf("%d", r.Encodings[t]),
			format(all, t),
			format(numeric, t),
		})
	}
	table.Render()
}

func renderForward(w io.Writer, results []model.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"step", "added", "features", "score"})
	for i, result := range results {
		added := ""
		if n := len(result.Features); n > 0 {
			added = string(result.Features[n-1])
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			added,
			fmt.Sprintf("%d", len(result.Features)),
			fmt.Sprintf("%.4f", result.Accuracy),
		})
	}
	table.Render()
}

func format(scores model.Scores, t model.Column) string {
	if s, ok := scores[t]; ok {
		return fmt.Sprintf("%.4f", s)
	}
	return "-"
}
