package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/drakos74/census/infra/config"
	"github.com/drakos74/census/internal/analysis"
	"github.com/drakos74/census/internal/report"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

func main() {
	cfgFile := flag.String("config", "", "path to a json or yaml config file")
	level := flag.String("level", "debug", "log level")
	flag.Parse()

	if l, err := zerolog.ParseLevel(*level); err == nil {
		zerolog.SetGlobalLevel(l)
	} else {
		log.Warn().Str("level", *level).Msg("unknown log level")
	}
	log.Debug().Msg("started")

	cfg := analysis.DefaultConfig()
	if *cfgFile != "" {
		if _, err := config.Load(*cfgFile, &cfg); err != nil {
			log.Fatal().Err(err).Msg("could not load config")
		}
	} else if _, err := os.Stat("infra/config/" + analysis.Name + ".json"); err == nil {
		config.MustLoad(analysis.Name, &cfg)
	}

	pipeline, err := analysis.NewPipeline(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create pipeline")
	}

	r, err := pipeline.Run()
	if errors.Is(err, analysis.ErrMissingDir) {
		log.Warn().Err(err).Msg("quitting")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	report.Log(r)
	if cfg.Output.Render {
		report.Render(os.Stdout, r)
	}
	if err := pipeline.Publish(context.Background(), r); err != nil {
		log.Fatal().Err(err).Msg("could not publish report")
	}
	log.Debug().Msg("done")
}
