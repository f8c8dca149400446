package types

type FacetOption struct {
	Value      string `json:"value"`
	Text       string `json:"text"`
	Count      int    `json:"count"`
	Parent     string `json:"parent,omitempty"`
	ParentSlug string `json:"parentSlug,omitempty"`
}

type Facets map[FacetName][]FacetOption

// Text returns the display label of the option with the given token.
func (f Facets) Text(name FacetName, value string) (string, bool) {
	for _, opt := range f[name] {
		if opt.Value == value {
			return opt.Text, true
		}
	}
	return "", false
}

type SelectedFilter struct {
	Facet       FacetName `json:"facet"`
	Heading     string    `json:"heading"`
	RemovalLink string    `json:"href"`
	Text        string    `json:"text"`
}

type ResultEnvelope struct {
	RequestId       string           `json:"requestId"`
	Page            []CatalogRecord  `json:"products"`
	TotalResults    int              `json:"totalResults"`
	TotalPages      int              `json:"totalPages"`
	CurrentPage     int              `json:"currentPage"`
	HasNextPage     bool             `json:"hasNextPage"`
	HasPrevPage     bool             `json:"hasPrevPage"`
	Facets          Facets           `json:"facets"`
	SelectedFilters []SelectedFilter `json:"selectedFilters"`
	Keywords        string           `json:"keywords,omitempty"`
	BaseQuery       string           `json:"baseQuery"`
	ClearFiltersUrl string           `json:"clearFiltersUrl"`
	Degraded        bool             `json:"degraded"`
	Problems        []string         `json:"problems,omitempty"`
}

type ProductView struct {
	Product  *CatalogRecord `json:"product,omitempty"`
	Contacts []Contact      `json:"contacts"`
	Degraded bool           `json:"degraded"`
	Problems []string       `json:"problems,omitempty"`
}

type CategoriesView struct {
	ProductView
	CategoryTypes []string    `json:"categoryTypes"`
	Components    []Component `json:"components"`
}

type GroupsView struct {
	Groups   []GroupCount `json:"groups"`
	Degraded bool         `json:"degraded"`
	Problems []string     `json:"problems,omitempty"`
}

type GroupView struct {
	Group     *TaxonomyEntry  `json:"group,omitempty"`
	Subgroups []TaxonomyEntry `json:"subgroups"`
	Degraded  bool            `json:"degraded"`
	Problems  []string        `json:"problems,omitempty"`
}

type UserSuggestions struct {
	Users    []UserGroupEntry `json:"users"`
	Degraded bool             `json:"degraded"`
	Problems []string         `json:"problems,omitempty"`
}
