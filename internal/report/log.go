package report

import (
	"fmt"

	"github.com/drakos74/census/internal/model"
	"github.com/rs/zerolog/log"
)

var headlines = map[model.Pass]string{
	model.AllOther:    "scores predicting using all other variables",
	model.NumericOnly: "scores predicting using just numerical variables",
	model.Forward:     "scores adding categorical variables incrementally",
}

// Log writes every result of the report to the log, one line per score and per feature.
func Log(r Report) {
	log.Debug().
		Str("dataset", r.Dataset).
		Int("rows", r.Rows).
		Int("columns", r.Columns).
		Msg("analysed dataset")
	for _, step := range r.Cleaning.Steps {
		log.Debug().
			Str("column", string(step.Column)).
			Int("removed", step.Removed).
			Int("rows", step.Rows).
			Msg("cleaning step")
	}
	for _, pass := range []model.Pass{model.AllOther, model.NumericOnly, model.Forward} {
		results, ok := r.Results[pass]
		if !ok {
			continue
		}
		log.Debug().Str("pass", string(pass)).Msg(headlines[pass])
		if pass == model.Forward && len(r.Ranking) > 0 {
			log.Debug().Str("ranking", fmt.Sprintf("%+v", r.Ranking)).Msg("ranked targets")
		}
		for _, result := range results {
			logResult(result)
		}
		if best, ok := r.Best(pass); ok {
			log.Info().
				Str("pass", string(pass)).
				Str("target", string(best.Target)).
				Str("score", fmt.Sprintf("%.4f", best.Accuracy)).
				Msg("best score")
		}
	}
}

func logResult(result model.Result) {
	l := log.Debug().
		Str("target", string(result.Target)).
		Str("score", fmt.Sprintf("%.4f", result.Accuracy))
	if result.Pass == model.Forward {
		l = l.Strs("variables", model.Names(result.Features))
	}
	l.Msg("score")
	for _, imp := range result.Importance {
		log.Debug().
			Str("feature", string(imp.Feature)).
			Str("importance", fmt.Sprintf("%.4f", imp.Value)).
			Msg("\tfeature importance")
	}
}
