package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const path = "infra/config"

// MustLoad loads the config for the given key
func MustLoad(key string, v interface{}) []byte {
	b, err := Load(fmt.Sprintf("%s/%s.json", path, key), v)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	log.Info().Str("config", key).Msg("loaded default config")
	return b
}

// Load decodes the file at the given path into v.
// Files ending in .yaml or .yml are read as yaml, everything else as json.
func Load(fn string, v interface{}) ([]byte, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("could not read config '%s': %w", fn, err)
	}

	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		err = json.Unmarshal(b, v)
	}
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config '%s': %w", fn, err)
	}

	log.Debug().Str("file", fn).Msg("loaded config")
	return b, nil
}
