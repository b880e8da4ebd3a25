package json

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/drakos74/census/internal/storage"
)

// LocalShard keeps all values in memory, one storage per shard.
func LocalShard() storage.Shard {
	stores := make(map[string]*LocalStorage)
	mutex := new(sync.Mutex)
	return func(shard string) (storage.Persistence, error) {
		mutex.Lock()
		defer mutex.Unlock()
		if s, ok := stores[shard]; ok {
			return s, nil
		}
		s := NewLocalStorage()
		stores[shard] = s
		return s, nil
	}
}

// LocalStorage is an in-memory storage keeping the json encoding of each value.
type LocalStorage struct {
	files map[storage.Key]string
	mutex *sync.RWMutex
}

// NewLocalStorage creates an empty in-memory storage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		files: make(map[storage.Key]string),
		mutex: new(sync.RWMutex),
	}
}

func (l LocalStorage) Store(k storage.Key, value interface{}) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	bb, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal value: %w", err)
	}

	l.files[k] = string(bb)
	return nil
}

func (l LocalStorage) Load(k storage.Key, value interface{}) error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if v, ok := l.files[k]; ok {
		err := json.Unmarshal([]byte(v), value)
		if err != nil {
			return fmt.Errorf("could not unmarshal value: %s: %w", err.Error(), storage.CouldNotLoadErr)
		}
		return nil
	}
	return fmt.Errorf("key not found '%+v': %w", k, storage.NotFoundErr)
}

// Runs returns the sorted run ids stored for the dataset.
func (l LocalStorage) Runs(ctx context.Context, dataset string) ([]string, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	seen := make(map[string]bool)
	runs := make([]string, 0)
	for k := range l.files {
		if k.Dataset != dataset || seen[k.Run] {
			continue
		}
		seen[k.Run] = true
		runs = append(runs, k.Run)
	}
	sort.Strings(runs)
	return runs, nil
}
