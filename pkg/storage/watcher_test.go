package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherEvictsChangedFile(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, TaxonomyFile, `[]`)

	cache := NewFileCache()
	_, err := cache.Get(fileName)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	w, err := NewWatcher(dir, cache)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Close()

	writeFile(t, dir, TaxonomyFile, `[{"Taxonomy":"Group","Item":"Funding"}]`)

	require.Eventually(t, func() bool {
		return cache.Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
