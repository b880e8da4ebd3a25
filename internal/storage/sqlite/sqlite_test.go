package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/drakos74/census/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), FileName), "reports")
	require.NoError(t, err)
	defer s.Close()

	k := storage.Key{Dataset: "adult", Run: "r1", Label: "report"}
	require.NoError(t, s.Store(k, payload{Name: "workclass", Score: 0.75}))

	var p payload
	require.NoError(t, s.Load(k, &p))
	assert.Equal(t, payload{Name: "workclass", Score: 0.75}, p)

	// overwrite
	require.NoError(t, s.Store(k, payload{Name: "race", Score: 0.5}))
	require.NoError(t, s.Load(k, &p))
	assert.Equal(t, "race", p.Name)

	require.NoError(t, s.Store(storage.Key{Dataset: "adult", Run: "r2", Label: "report"}, payload{}))
	runs, err := s.Runs(ctx, "adult")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, runs)
}

func TestStore_NotFound(t *testing.T) {
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), FileName), "reports")
	require.NoError(t, err)
	defer s.Close()

	var p payload
	err = s.Load(storage.Key{Dataset: "adult", Run: "none", Label: "report"}, &p)
	assert.ErrorIs(t, err, storage.NotFoundErr)
}
