package index

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

type CatalogSource interface {
	LoadCatalog(ctx context.Context) ([]types.CatalogRecord, error)
}

// CatalogStore produces the eligible working set: the catalog after the
// exclusion policy, with empty and duplicate ids removed. Nothing is kept
// between calls.
type CatalogStore struct {
	source CatalogSource
	Policy ExclusionPolicy
}

func NewCatalogStore(source CatalogSource, policy ExclusionPolicy) *CatalogStore {
	return &CatalogStore{
		source: source,
		Policy: policy,
	}
}

// Eligible loads the catalog and applies the exclusion policy. On a load
// failure it returns an empty slice together with the *types.DataLoadError.
func (s *CatalogStore) Eligible(ctx context.Context) ([]types.CatalogRecord, error) {
	all, err := s.source.LoadCatalog(ctx)
	if err != nil {
		return []types.CatalogRecord{}, err
	}
	return s.Filter(all), nil
}

// Filter applies the exclusion policy to an already loaded record set.
func (s *CatalogStore) Filter(all []types.CatalogRecord) []types.CatalogRecord {
	seen := make(map[string]struct{}, len(all))
	ret := make([]types.CatalogRecord, 0, len(all))
	for i := range all {
		record := &all[i]
		if s.Policy.Excludes(record) {
			continue
		}
		if record.Id == "" {
			logrus.WithField("name", record.Name).Warn("skipping catalog record without id")
			continue
		}
		if _, ok := seen[record.Id]; ok {
			logrus.WithField("id", record.Id).Warn("skipping duplicate catalog record")
			continue
		}
		seen[record.Id] = struct{}{}
		ret = append(ret, *record)
	}
	return ret
}

// FindById returns the eligible record with the given id. Excluded records
// are not found.
func (s *CatalogStore) FindById(ctx context.Context, id string) (*types.CatalogRecord, error) {
	records, err := s.Eligible(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Id == id {
			return &records[i], nil
		}
	}
	return nil, &types.NotFoundError{Kind: "product", Key: id}
}
