package types

import "slices"

type FacetName string

const (
	FacetPhase        FacetName = "phase"
	FacetBusinessArea FacetName = "business-area"
	FacetGroup        FacetName = "group"
	FacetType         FacetName = "type"
	FacetParent       FacetName = "parent"
	FacetSubgroup     FacetName = "subgroup"
	FacetUser         FacetName = "user"
)

// FacetOrder is the canonical facet order used for serialization and for
// the selected filter list.
var FacetOrder = []FacetName{
	FacetPhase,
	FacetBusinessArea,
	FacetGroup,
	FacetType,
	FacetParent,
	FacetSubgroup,
	FacetUser,
}

var facetHeadings = map[FacetName]string{
	FacetPhase:        "Phase",
	FacetBusinessArea: "Business area",
	FacetGroup:        "Group",
	FacetType:         "Type",
	FacetParent:       "Parent service",
	FacetSubgroup:     "Sub-group",
	FacetUser:         "User",
}

func (f FacetName) Heading() string {
	if h, ok := facetHeadings[f]; ok {
		return h
	}
	return string(f)
}

func (f FacetName) IsKnown() bool {
	_, ok := facetHeadings[f]
	return ok
}

// UncheckedSentinel is posted by unticked checkboxes and is never a token.
const UncheckedSentinel = "_unchecked"

// FilterSelection is the parsed user input for one evaluation. Build it with
// NewFilterSelection and treat it as read only afterwards.
type FilterSelection struct {
	facets   map[FacetName][]string
	Keywords string `json:"keywords,omitempty"`
	Page     int    `json:"page"`
}

func NewFilterSelection(facets map[FacetName][]string, keywords string, page int) *FilterSelection {
	clean := make(map[FacetName][]string, len(facets))
	for name, tokens := range facets {
		list := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if token == "" || token == UncheckedSentinel || slices.Contains(list, token) {
				continue
			}
			list = append(list, token)
		}
		if len(list) > 0 {
			clean[name] = list
		}
	}
	if page < 1 {
		page = 1
	}
	return &FilterSelection{
		facets:   clean,
		Keywords: keywords,
		Page:     page,
	}
}

// Tokens returns a copy of the selected tokens for a facet in input order.
func (s *FilterSelection) Tokens(name FacetName) []string {
	return slices.Clone(s.facets[name])
}

func (s *FilterSelection) HasFacet(name FacetName) bool {
	return len(s.facets[name]) > 0
}

// ActiveFacets lists the facets with at least one token, in FacetOrder
// followed by any unknown names in sorted order.
func (s *FilterSelection) ActiveFacets() []FacetName {
	ret := make([]FacetName, 0, len(s.facets))
	for _, name := range FacetOrder {
		if s.HasFacet(name) {
			ret = append(ret, name)
		}
	}
	extra := make([]FacetName, 0)
	for name := range s.facets {
		if !name.IsKnown() {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(ret, extra...)
}

func (s *FilterSelection) IsEmpty() bool {
	return len(s.facets) == 0 && s.Keywords == ""
}
