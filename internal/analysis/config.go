package analysis

import (
	"fmt"

	"github.com/drakos74/census/internal/math/ml"
	"github.com/drakos74/census/internal/model"
)

// Name is the key of the analysis config.
const Name = "census"

// Input points at the dataset file.
type Input struct {
	Dir  string `json:"dir" yaml:"dir"`
	File string `json:"file" yaml:"file"`
}

// Output describes where the run report goes.
type Output struct {
	Dir     string `json:"dir" yaml:"dir"`
	Store   string `json:"store" yaml:"store"`
	Metrics bool   `json:"metrics" yaml:"metrics"`
	Render  bool   `json:"render" yaml:"render"`
}

// Config is the configuration of an analysis run.
type Config struct {
	Input       Input     `json:"input" yaml:"input"`
	Output      Output    `json:"output" yaml:"output"`
	Model       ml.Config `json:"model" yaml:"model"`
	TestSize    float64   `json:"test_size" yaml:"test_size"`
	Categorical []string  `json:"categorical" yaml:"categorical"`
	Numerical   []string  `json:"numerical" yaml:"numerical"`
	Target      string    `json:"target" yaml:"target"`
	Forward     bool      `json:"forward" yaml:"forward"`
}

// DefaultConfig reproduces the reference analysis of the adult dataset.
func DefaultConfig() Config {
	return Config{
		Input: Input{
			Dir:  "../input/",
			File: "adult.data",
		},
		Output: Output{
			Dir:   "../output/",
			Store:  VoidStore,
			Render: true,
		},
		Model: ml.Config{
			Classifier: ml.TreeClassifier,
			MaxDepth:   10,
			Trees:      100,
			Seed:       1,
		},
		TestSize: 0.2,
		Categorical: model.Names(model.Sorted([]model.Column{
			model.NativeCountry,
			model.Target,
			model.Sex,
			model.Race,
			model.Relationship,
			model.Education,
			model.Occupation,
			model.WorkClass,
			model.MaritalStatus,
		})),
		Numerical: model.Names(model.Sorted([]model.Column{
			model.FnlWgt,
			model.CapGain,
			model.CapLoss,
			model.HrsWeekly,
		})),
		Target:  string(model.Target),
		Forward: true,
	}
}

// categorical returns the sorted categorical columns.
func (c Config) categorical() []model.Column {
	return model.Sorted(model.Columns(c.Categorical...))
}

// numerical returns the sorted numeric feature columns.
func (c Config) numerical() []model.Column {
	return model.Sorted(model.Columns(c.Numerical...))
}

// Validate checks the config against the schema.
func (c Config) Validate(schema model.Schema) error {
	if err := schema.Check(c.categorical()...); err != nil {
		return fmt.Errorf("categorical columns: %w", err)
	}
	for _, col := range c.categorical() {
		if k, _ := schema.Kind(col); k != model.Categorical {
			return fmt.Errorf("column '%s' is %s and cannot be encoded", col, k)
		}
	}
	if err := schema.Check(c.numerical()...); err != nil {
		return fmt.Errorf("numerical columns: %w", err)
	}
	for _, col := range c.numerical() {
		if k, _ := schema.Kind(col); k != model.Numeric {
			return fmt.Errorf("column '%s' is %s and cannot be a numeric feature", col, k)
		}
	}
	if c.Forward {
		if err := schema.Check(model.Column(c.Target)); err != nil {
			return fmt.Errorf("target column: %w", err)
		}
		if !contains(c.categorical(), model.Column(c.Target)) {
			return fmt.Errorf("target column '%s' is not categorical", c.Target)
		}
	}
	if c.TestSize <= 0 || c.TestSize >= 1 {
		return fmt.Errorf("test size %v must be within (0,1)", c.TestSize)
	}
	switch c.Output.Store {
	case VoidStore, JsonStore, SqliteStore, MemoryStore, "":
	default:
		return fmt.Errorf("unknown store '%s'", c.Output.Store)
	}
	return nil
}

func contains(cc []model.Column, c model.Column) bool {
	for _, col := range cc {
		if col == c {
			return true
		}
	}
	return false
}
