package model

// Pass identifies an evaluation pass over the categorical targets.
type Pass string

const (
	// AllOther trains each target on every other column.
	AllOther Pass = "all"
	// NumericOnly trains each target on the numeric columns only.
	NumericOnly Pass = "numeric"
	// Forward grows the feature set of the income target one ranked column at a time.
	Forward Pass = "forward"
)

// Importance is the contribution of a feature to a trained tree.
type Importance struct {
	Feature Column  `json:"feature"`
	Value   float64 `json:"value"`
}

// Result is the outcome of training one classifier for one target.
type Result struct {
	Pass       Pass         `json:"pass"`
	Target     Column       `json:"target"`
	Features   []Column     `json:"features"`
	Accuracy   float64      `json:"accuracy"`
	Importance []Importance `json:"importance"`
	Train      int          `json:"train"`
	Test       int          `json:"test"`
}

// Score is the accuracy reached for a target.
type Score struct {
	Target   Column  `json:"target"`
	Accuracy float64 `json:"accuracy"`
}

// Scores maps targets to their accuracy.
type Scores map[Column]float64

// NewScores collects the accuracy of the given results.
func NewScores(results []Result) Scores {
	scores := make(Scores, len(results))
	for _, r := range results {
		scores[r.Target] = r.Accuracy
	}
	return scores
}
