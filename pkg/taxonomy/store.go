package taxonomy

import (
	"context"

	"github.com/DFE-Digital/fips-v4/pkg/search"
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

type Source interface {
	LoadTaxonomy(ctx context.Context) ([]types.TaxonomyEntry, error)
}

// Store reads the category table on every Load. It keeps no state of its own.
type Store struct {
	source Source
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Load returns the current table. On failure the table is empty and the
// error is the source's *types.DataLoadError.
func (s *Store) Load(ctx context.Context) (*Table, error) {
	entries, err := s.source.LoadTaxonomy(ctx)
	if err != nil {
		return NewTable(nil), err
	}
	return NewTable(entries), nil
}

// Table is one loaded snapshot of the category table.
type Table struct {
	entries []types.TaxonomyEntry
}

func NewTable(entries []types.TaxonomyEntry) *Table {
	if entries == nil {
		entries = []types.TaxonomyEntry{}
	}
	return &Table{entries: entries}
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Token is the filter value of an entry: its slug when set, otherwise the
// normalized item label.
func Token(entry *types.TaxonomyEntry) search.Token {
	if entry.Slug != "" {
		return entry.Slug
	}
	return search.Normalize(entry.Item)
}

// Entries returns the rows of one taxonomy in table order.
func (t *Table) Entries(taxonomy string) []types.TaxonomyEntry {
	ret := make([]types.TaxonomyEntry, 0)
	for _, e := range t.entries {
		if e.Taxonomy == taxonomy {
			ret = append(ret, e)
		}
	}
	return ret
}

// SubgroupsOf returns the SubGroup rows whose Parent equals groupItem exactly.
func (t *Table) SubgroupsOf(groupItem string) []types.TaxonomyEntry {
	ret := make([]types.TaxonomyEntry, 0)
	for _, e := range t.entries {
		if e.Taxonomy == types.TaxonomySubGroup && e.Parent == groupItem {
			ret = append(ret, e)
		}
	}
	return ret
}

// GroupsWithSubgroupCounts lists every Group with the number of SubGroup rows
// that name it as parent. SubGroups pointing at a missing group are ignored.
func (t *Table) GroupsWithSubgroupCounts() []types.GroupCount {
	counts := make(map[string]int)
	for _, e := range t.entries {
		if e.Taxonomy == types.TaxonomySubGroup {
			counts[e.Parent]++
		}
	}
	groups := t.Entries(types.TaxonomyGroup)
	ret := make([]types.GroupCount, 0, len(groups))
	for _, g := range groups {
		ret = append(ret, types.GroupCount{
			Entry:         g,
			SubgroupCount: counts[g.Item],
		})
	}
	return ret
}

// FindBySlugOrLabel resolves a url key within one taxonomy. An explicit slug
// wins over a normalized label.
func (t *Table) FindBySlugOrLabel(taxonomy string, key string) (*types.TaxonomyEntry, error) {
	if key != "" {
		for i := range t.entries {
			e := &t.entries[i]
			if e.Taxonomy == taxonomy && e.Slug == key {
				return e, nil
			}
		}
		for i := range t.entries {
			e := &t.entries[i]
			if e.Taxonomy == taxonomy && search.Matches(e.Item, key) {
				return e, nil
			}
		}
	}
	return nil, &types.NotFoundError{Kind: taxonomy, Key: key}
}
