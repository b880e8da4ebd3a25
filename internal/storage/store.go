package storage

import (
	"errors"
	"fmt"
)

// ReportsDir is the sub-directory of the output dir holding the stored reports.
const ReportsDir = "reports"

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key of a run artifact.
type Key struct {
	Dataset string `json:"dataset"`
	Run     string `json:"run"`
	Label   string `json:"label"`
}

// Path is the flat representation of the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s_%s", k.Dataset, k.Run, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
