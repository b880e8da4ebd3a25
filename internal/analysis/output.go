package analysis

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/drakos74/census/internal/metrics"
	"github.com/drakos74/census/internal/report"
	"github.com/drakos74/census/internal/storage"
	jsonstorage "github.com/drakos74/census/internal/storage/file/json"
	"github.com/drakos74/census/internal/storage/sqlite"
	"github.com/rs/zerolog/log"
)

const (
	// VoidStore discards the reports.
	VoidStore = "void"
	// JsonStore writes one json file per report.
	JsonStore = "json"
	// SqliteStore keeps the reports in a sqlite database.
	SqliteStore = "sqlite"
	// MemoryStore keeps the reports in memory for the lifetime of the pipeline.
	MemoryStore = "memory"
)

const reportLabel = "report"

type runLister interface {
	Runs(ctx context.Context, dataset string) ([]string, error)
}

// Shard returns the storage configured for the output.
func (c Config) Shard(ctx context.Context) storage.Shard {
	switch c.Output.Store {
	case JsonStore:
		return jsonstorage.BlobShard(c.Output.Dir)
	case MemoryStore:
		return jsonstorage.LocalShard()
	case SqliteStore:
		return sqlite.NewShard(ctx, filepath.Join(c.Output.Dir, sqlite.FileName))
	}
	return storage.VoidShard()
}

// Publish hands the report to the configured storage and metrics sinks.
func (p *Pipeline) Publish(ctx context.Context, r report.Report) error {
	if p.shard == nil {
		p.shard = p.cfg.Shard(ctx)
	}
	persistence, err := p.shard(storage.ReportsDir)
	if err != nil {
		return fmt.Errorf("could not open report storage: %w", err)
	}
	if closer, ok := persistence.(io.Closer); ok {
		defer closer.Close()
	}

	key := ReportKey(r)
	if err := persistence.Store(key, r); err != nil {
		return fmt.Errorf("could not store report: %w", err)
	}
	log.Debug().Str("store", p.cfg.Output.Store).Str("key", key.Path()).Msg("stored report")

	if lister, ok := persistence.(runLister); ok {
		runs, err := lister.Runs(ctx, key.Dataset)
		if err != nil {
			return fmt.Errorf("could not list stored runs: %w", err)
		}
		log.Info().Str("dataset", key.Dataset).Int("runs", len(runs)).Msg("stored runs")
	}

	if p.cfg.Output.Metrics {
		m := metrics.NewPrometheusMetrics()
		m.Observe(r)
		fn, err := m.Write(p.cfg.Output.Dir)
		if err != nil {
			return err
		}
		log.Debug().Str("file", fn).Msg("wrote metrics")
	}
	return nil
}

// ReportKey is the storage key of the given report.
func ReportKey(r report.Report) storage.Key {
	return storage.Key{
		Dataset: filepath.Base(r.Dataset),
		Run:     r.ID,
		Label:   reportLabel,
	}
}
