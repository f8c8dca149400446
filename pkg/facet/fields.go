package facet

import (
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// FieldFunc reads the display value a facet filters on.
type FieldFunc func(record *types.CatalogRecord) string

func phaseField(r *types.CatalogRecord) string        { return r.Phase }
func businessAreaField(r *types.CatalogRecord) string { return r.BusinessArea }
func parentField(r *types.CatalogRecord) string       { return r.Parent }
func typeField(r *types.CatalogRecord) string         { return r.Type }

// fieldFor maps each filterable facet to a record field. group, parent and
// subgroup all read Parent since records carry no subgroup of their own.
// user has no field and never constrains a result.
var fieldFor = map[types.FacetName]FieldFunc{
	types.FacetPhase:        phaseField,
	types.FacetBusinessArea: businessAreaField,
	types.FacetGroup:        parentField,
	types.FacetType:         typeField,
	types.FacetParent:       parentField,
	types.FacetSubgroup:     parentField,
}

func FieldFor(name types.FacetName) (FieldFunc, bool) {
	fn, ok := fieldFor[name]
	return fn, ok
}

// valueFacets are built from the distinct values found on the records.
var valueFacets = []types.FacetName{
	types.FacetPhase,
	types.FacetBusinessArea,
	types.FacetType,
	types.FacetParent,
}
