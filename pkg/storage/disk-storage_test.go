package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

const catalogJson = `[
  {"id": "1", "Name": "Pupil Premium", "phase": "Live", "Parent": "Funding", "Operational Status": "Operational",
   "Owned By": "Jane Smith", "categories": {"Hosting": [{"type": "Cloud", "name": "Azure", "description": "PaaS"}]}},
  {"id": "2", "Name": "School Census", "business-area": "Data"}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fileName := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o644))
	return fileName
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CatalogFile, catalogJson)

	ds := NewDiskStorage(dir)
	records, err := ds.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Pupil Premium", records[0].Name)
	assert.Equal(t, "Live", records[0].Phase)
	assert.Equal(t, "Operational", records[0].OperationalStatus)
	assert.Equal(t, "Jane Smith", records[0].OwnedBy)
	assert.Equal(t, []types.Component{{Type: "Cloud", Name: "Azure", Description: "PaaS"}}, records[0].Categories["Hosting"])
	assert.Equal(t, "Data", records[1].BusinessArea)
	assert.Empty(t, records[1].Parent)
}

func TestLoadTaxonomy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TaxonomyFile, `[{"Taxonomy":"Group","Item":"Funding"},{"Taxonomy":"SubGroup","Item":"Grants","Slug":"grants-sg","Parent":"Funding"}]`)

	entries, err := NewDiskStorage(dir).LoadTaxonomy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.TaxonomyEntry{
		{Taxonomy: "Group", Item: "Funding"},
		{Taxonomy: "SubGroup", Item: "Grants", Slug: "grants-sg", Parent: "Funding"},
	}, entries)
}

func TestLoadMissingFileIsDataLoadError(t *testing.T) {
	records, err := NewDiskStorage(t.TempDir()).LoadCatalog(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsDataLoadError(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLoadMalformedFileIsDataLoadError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, CatalogFile, `{"not": "an array"`)

	records, err := NewDiskStorage(dir).LoadCatalog(context.Background())
	require.Error(t, err)
	var dl *types.DataLoadError
	require.True(t, errors.As(err, &dl))
	assert.Equal(t, CatalogFile, dl.Source)
	assert.Empty(t, records)
}

func TestLoadTimeout(t *testing.T) {
	dir := t.TempDir()
	// reading a fifo without a writer blocks, which stands in for a hung source
	if err := syscall.Mkfifo(filepath.Join(dir, CatalogFile), 0o644); err != nil {
		t.Skipf("mkfifo not supported: %v", err)
	}

	ds := NewDiskStorage(dir, WithTimeout(20*time.Millisecond))
	start := time.Now()
	_, err := ds.LoadCatalog(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsDataLoadError(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCachedLoadSeesUpdates(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, CatalogFile, `[{"id":"1","Name":"First"}]`)

	cache := NewFileCache()
	ds := NewDiskStorage(dir, WithCache(cache))

	records, err := ds.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Equal(t, "First", records[0].Name)
	assert.Equal(t, 1, cache.Len())

	// mutating a decoded record must not leak into the next load
	records[0].Name = "Mutated"
	records, err = ds.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "First", records[0].Name)

	writeFile(t, dir, CatalogFile, `[{"id":"1","Name":"Second"},{"id":"2","Name":"Third"}]`)
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(fileName, later, later))

	records, err = ds.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Second", records[0].Name)
}

func TestCacheDropsRemovedFile(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, CatalogFile, `[]`)
	cache := NewFileCache()
	_, err := cache.Get(fileName)
	require.NoError(t, err)
	require.NoError(t, os.Remove(fileName))

	_, err = cache.Get(fileName)
	assert.Error(t, err)
	assert.Equal(t, 0, cache.Len())
}

func TestVersionChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, CatalogFile, `[]`)
	ds := NewDiskStorage(dir)

	v1, err := ds.Version(CatalogFile)
	require.NoError(t, err)

	writeFile(t, dir, CatalogFile, `[{"id":"1"}]`)
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(fileName, later, later))

	v2, err := ds.Version(CatalogFile)
	require.NoError(t, err)
	assert.NotEqual(t, v1, v2)

	_, err = ds.Version("missing.json")
	assert.Error(t, err)
}
