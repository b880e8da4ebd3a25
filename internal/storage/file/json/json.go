package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/census/internal/storage"
)

// BlobShard stores every key as a json file under the given root directory.
func BlobShard(root string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(filepath.Join(root, shard)), nil
	}
}

// JsonBlob is a file backed storage writing one json file per key.
type JsonBlob struct {
	dir string
}

// NewJsonBlob creates a new json file storage in the given directory.
func NewJsonBlob(dir string) *JsonBlob {
	return &JsonBlob{dir: dir}
}

func (j *JsonBlob) Store(k storage.Key, value interface{}) error {
	return Save(j.dir, fileName(k), value)
}

func (j *JsonBlob) Load(k storage.Key, value interface{}) error {
	return Load(j.dir, fileName(k), value)
}

func fileName(k storage.Key) string {
	return fmt.Sprintf("%s.json", k.Path())
}

// Save saves the given json struct into the given path with the provided filename.
func Save(filePath string, fileName string, value interface{}) error {
	// check if filepath exists
	info, err := os.Stat(filePath)
	if err != nil {
		err := os.MkdirAll(filePath, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", filePath, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a directory: %s", filePath)
	}

	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode '%s': %w", fileName, err)
	}

	p := filepath.Join(filePath, fileName)
	if err := os.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Load loads the payload from the given filePath and fileName.
func Load(filePath string, fileName string, value interface{}) error {
	p := filepath.Join(filePath, fileName)

	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' %s: %w", p, err.Error(), storage.NotFoundErr)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return fmt.Errorf("could not unmarshal '%s': %s: %w", p, err.Error(), storage.CouldNotLoadErr)
	}

	return nil
}
