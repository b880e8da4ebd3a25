package analysis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/census/internal/model"
	"github.com/drakos74/census/internal/report"
	"github.com/drakos74/census/internal/storage"
	"github.com/drakos74/census/internal/table"
	timing "github.com/drakos74/census/internal/time"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrMissingDir is returned when a required directory does not exist.
var ErrMissingDir = errors.New("missing directory")

// Pipeline loads, cleans and encodes the dataset and evaluates the categorical targets.
type Pipeline struct {
	cfg       Config
	schema    model.Schema
	evaluator *Evaluator
	clock     timing.Clock
	shard     storage.Shard
}

// NewPipeline creates a pipeline for the adult schema.
func NewPipeline(cfg Config) (*Pipeline, error) {
	return NewPipelineFor(cfg, model.Adult())
}

// NewPipelineFor creates a pipeline for the given schema.
func NewPipelineFor(cfg Config, schema model.Schema) (*Pipeline, error) {
	if err := cfg.Validate(schema); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Pipeline{
		cfg:       cfg,
		schema:    schema,
		evaluator: NewEvaluator(cfg.Model, cfg.TestSize),
	}, nil
}

// WithClock sets the clock used to time the run.
func (p *Pipeline) WithClock(clock timing.Clock) *Pipeline {
	p.clock = clock
	return p
}

// CheckDirs makes sure the input and output directories exist.
func CheckDirs(cfg Config) error {
	for _, d := range []struct {
		name string
		dir  string
	}{
		{name: "input", dir: cfg.Input.Dir},
		{name: "output", dir: cfg.Output.Dir},
	} {
		info, err := os.Stat(d.dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%s folder '%s' does not exist: %w", d.name, d.dir, ErrMissingDir)
		}
	}
	return nil
}

// Run checks the directories, loads the dataset file and analyses it.
func (p *Pipeline) Run() (report.Report, error) {
	if err := CheckDirs(p.cfg); err != nil {
		return report.Report{}, err
	}
	fn := filepath.Join(p.cfg.Input.Dir, p.cfg.Input.File)
	t, err := table.Load(fn, p.schema)
	if err != nil {
		return report.Report{}, err
	}
	return p.Analyse(fn, t)
}

// Analyse runs the cleaning, encoding and evaluation passes on the given table.
func (p *Pipeline) Analyse(dataset string, t table.Table) (report.Report, error) {
	watch := timing.Start(p.clock)
	r := report.New(uuid.New().String(), dataset, watch.Started())
	r.Rows, r.Columns = t.Shape()
	log.Debug().Int("rows", r.Rows).Int("columns", r.Columns).Msg("original dataset shape")

	categorical := p.cfg.categorical()
	numerical := p.cfg.numerical()

	cleaned, cleaning, err := table.Clean(t, categorical)
	if err != nil {
		return report.Report{}, fmt.Errorf("could not clean dataset: %w", err)
	}
	r.Cleaning = cleaning

	encoded, encodings, err := table.Encode(cleaned, categorical)
	if err != nil {
		return report.Report{}, fmt.Errorf("could not encode dataset: %w", err)
	}
	for c, enc := range encodings {
		r.Encodings[c] = enc.Len()
	}

	all, err := p.evaluator.AllOther(encoded, categorical)
	if err != nil {
		return report.Report{}, err
	}
	r.Results[model.AllOther] = all

	numeric, err := p.evaluator.NumericOnly(encoded, categorical, numerical)
	if err != nil {
		return report.Report{}, err
	}
	r.Results[model.NumericOnly] = numeric
	r.Scores = model.NewScores(numeric)

	ranking := NewRanking(r.Scores)
	r.Ranking = ranking.Scores()

	if p.cfg.Forward {
		target := model.Column(p.cfg.Target)
		forward, err := p.evaluator.Forward(encoded, target, numerical, ranking.Scores(target))
		if err != nil {
			return report.Report{}, err
		}
		r.Results[model.Forward] = forward
	}

	r.Elapsed = watch.Elapsed()
	log.Info().
		Str("id", r.ID).
		Str("time", timing.Format(r.Elapsed)).
		Msg("analysis done")
	return r, nil
}
