package facet

import (
	"github.com/DFE-Digital/fips-v4/pkg/search"
	"github.com/DFE-Digital/fips-v4/pkg/taxonomy"
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// AggregationMode selects the record set a facet is counted over.
type AggregationMode int

const (
	// CountFiltered counts only records in the current result.
	CountFiltered AggregationMode = iota
	// CountEligible counts the whole eligible set and ignores the selection.
	CountEligible
)

// SubgroupCountBasis selects which label a subgroup option is counted by.
type SubgroupCountBasis int

const (
	// CountByOwnItem counts records whose Parent is the subgroup's own label,
	// the same field the subgroup filter matches.
	CountByOwnItem SubgroupCountBasis = iota
	// CountByDeclaredParent counts records whose Parent is the subgroup's
	// owning group.
	CountByDeclaredParent
)

type AggregationOptions struct {
	Modes         map[types.FacetName]AggregationMode
	SubgroupBasis SubgroupCountBasis
}

// DefaultAggregationOptions counts every facet over the filtered result.
func DefaultAggregationOptions() AggregationOptions {
	return AggregationOptions{
		Modes:         map[types.FacetName]AggregationMode{},
		SubgroupBasis: CountByOwnItem,
	}
}

func (o AggregationOptions) ModeFor(name types.FacetName) AggregationMode {
	if mode, ok := o.Modes[name]; ok {
		return mode
	}
	return CountFiltered
}

type Aggregator struct {
	Options AggregationOptions
}

func NewAggregator(opts AggregationOptions) *Aggregator {
	return &Aggregator{Options: opts}
}

// ComputeFacets builds the options of every facet except user. filtered is
// the current result and eligible the full working set, each facet is
// counted over one of them according to its mode.
func (a *Aggregator) ComputeFacets(filtered, eligible []types.CatalogRecord, table *taxonomy.Table) types.Facets {
	facets := make(types.Facets, len(valueFacets)+2)
	for _, name := range valueFacets {
		field, _ := FieldFor(name)
		facets[name] = ValueOptions(a.recordsFor(name, filtered, eligible), field)
	}

	parents := countParents(a.recordsFor(types.FacetGroup, filtered, eligible))
	facets[types.FacetGroup] = GroupOptions(table, parents)

	parents = countParents(a.recordsFor(types.FacetSubgroup, filtered, eligible))
	facets[types.FacetSubgroup] = SubgroupOptions(table, parents, a.Options.SubgroupBasis)
	return facets
}

func (a *Aggregator) recordsFor(name types.FacetName, filtered, eligible []types.CatalogRecord) []types.CatalogRecord {
	if a.Options.ModeFor(name) == CountEligible {
		return eligible
	}
	return filtered
}

// ValueOptions returns one option per distinct non-empty display value.
// Counts use exact display equality, so "Live" and "live" are separate
// options sharing a token.
func ValueOptions(records []types.CatalogRecord, field FieldFunc) []types.FacetOption {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range records {
		value := field(&records[i])
		if value == "" {
			continue
		}
		if _, ok := counts[value]; !ok {
			order = append(order, value)
		}
		counts[value]++
	}
	ret := make([]types.FacetOption, 0, len(order))
	for _, value := range order {
		ret = append(ret, types.FacetOption{
			Value: search.Normalize(value),
			Text:  value,
			Count: counts[value],
		})
	}
	SortOptions(ret)
	return ret
}

func countParents(records []types.CatalogRecord) map[string]int {
	counts := make(map[string]int)
	for i := range records {
		if p := records[i].Parent; p != "" {
			counts[p]++
		}
	}
	return counts
}

// GroupOptions lists every Group entry counted by records whose Parent is
// the group label.
func GroupOptions(table *taxonomy.Table, parents map[string]int) []types.FacetOption {
	groups := table.Entries(types.TaxonomyGroup)
	ret := make([]types.FacetOption, 0, len(groups))
	for i := range groups {
		ret = append(ret, types.FacetOption{
			Value: taxonomy.Token(&groups[i]),
			Text:  groups[i].Item,
			Count: parents[groups[i].Item],
		})
	}
	SortOptions(ret)
	return ret
}

// SubgroupOptions lists every SubGroup entry. A subgroup whose parent is not
// a known group is still listed with a count of zero.
func SubgroupOptions(table *taxonomy.Table, parents map[string]int, basis SubgroupCountBasis) []types.FacetOption {
	groups := make(map[string]struct{})
	for _, g := range table.Entries(types.TaxonomyGroup) {
		groups[g.Item] = struct{}{}
	}
	subgroups := table.Entries(types.TaxonomySubGroup)
	ret := make([]types.FacetOption, 0, len(subgroups))
	for i := range subgroups {
		sg := &subgroups[i]
		// A subgroup outside the group tree is never offered as a count,
		// even though selecting it still matches records by Parent.
		count := 0
		if _, ok := groups[sg.Parent]; ok {
			if basis == CountByDeclaredParent {
				count = parents[sg.Parent]
			} else {
				count = parents[sg.Item]
			}
		}
		ret = append(ret, types.FacetOption{
			Value:      taxonomy.Token(sg),
			Text:       sg.Item,
			Count:      count,
			Parent:     sg.Parent,
			ParentSlug: search.Normalize(sg.Parent),
		})
	}
	SortOptions(ret)
	return ret
}
