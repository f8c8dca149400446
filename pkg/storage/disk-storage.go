package storage

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

type readResult struct {
	data []byte
	err  error
}

// readFile reads a file bounded by the storage timeout. The read goroutine
// writes to a buffered channel so it can finish after a timeout.
func (d *DiskStorage) readFile(ctx context.Context, fileName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	ch := make(chan readResult, 1)
	go func() {
		var res readResult
		if d.cache != nil {
			res.data, res.err = d.cache.Get(fileName)
		} else {
			res.data, res.err = os.ReadFile(fileName)
		}
		ch <- res
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.data, res.err
	}
}

// LoadJson decodes a json file from the root folder into data. Every failure
// is returned as a *types.DataLoadError.
func (d *DiskStorage) LoadJson(ctx context.Context, data any, name string) error {
	fileName := d.GetFileName(name)
	raw, err := d.readFile(ctx, fileName)
	if err != nil {
		return types.NewDataLoadError(name, err)
	}
	if err = sonic.ConfigStd.Unmarshal(raw, data); err != nil {
		return types.NewDataLoadError(name, fmt.Errorf("decode: %w", err))
	}
	return nil
}

func (d *DiskStorage) LoadCatalog(ctx context.Context) ([]types.CatalogRecord, error) {
	records := make([]types.CatalogRecord, 0)
	if err := d.LoadJson(ctx, &records, CatalogFile); err != nil {
		return []types.CatalogRecord{}, err
	}
	logrus.WithField("count", len(records)).Debug("loaded catalog")
	return records, nil
}

func (d *DiskStorage) LoadTaxonomy(ctx context.Context) ([]types.TaxonomyEntry, error) {
	entries := make([]types.TaxonomyEntry, 0)
	if err := d.LoadJson(ctx, &entries, TaxonomyFile); err != nil {
		return []types.TaxonomyEntry{}, err
	}
	return entries, nil
}

func (d *DiskStorage) LoadUserGroups(ctx context.Context) ([]types.UserGroup, error) {
	groups := make([]types.UserGroup, 0)
	if err := d.LoadJson(ctx, &groups, UserGroupsFile); err != nil {
		return []types.UserGroup{}, err
	}
	return groups, nil
}

// Version identifies the current contents of the named files by modification
// time and size. It changes whenever one of the files is rewritten.
func (d *DiskStorage) Version(names ...string) (string, error) {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		info, err := os.Stat(d.GetFileName(name))
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s@%d-%d", name, info.ModTime().UnixNano(), info.Size()))
	}
	return strings.Join(parts, ";"), nil
}
