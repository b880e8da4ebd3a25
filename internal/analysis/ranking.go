package analysis

import (
	"github.com/drakos74/census/internal/model"
	"github.com/google/btree"
)

const degree = 8

// Ranking orders scores by accuracy, best first. Equal scores are ordered by target name.
type Ranking struct {
	tree *btree.BTreeG[model.Score]
}

func better(a, b model.Score) bool {
	if a.Accuracy != b.Accuracy {
		return a.Accuracy > b.Accuracy
	}
	return a.Target < b.Target
}

// NewRanking ranks the given scores.
func NewRanking(scores model.Scores) *Ranking {
	r := &Ranking{
		tree: btree.NewG[model.Score](degree, better),
	}
	for target, accuracy := range scores {
		r.tree.ReplaceOrInsert(model.Score{
			Target:   target,
			Accuracy: accuracy,
		})
	}
	return r
}

// Len returns the number of ranked targets.
func (r *Ranking) Len() int {
	return r.tree.Len()
}

// Scores returns the ranked scores, skipping the excluded targets.
func (r *Ranking) Scores(exclude ...model.Column) []model.Score {
	skip := make(map[model.Column]struct{}, len(exclude))
	for _, c := range exclude {
		skip[c] = struct{}{}
	}
	scores := make([]model.Score, 0, r.tree.Len())
	r.tree.Ascend(func(s model.Score) bool {
		if _, ok := skip[s.Target]; !ok {
			scores = append(scores, s)
		}
		return true
	})
	return scores
}
