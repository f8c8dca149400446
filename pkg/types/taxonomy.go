package types

// Taxonomy names used in the category table.
const (
	TaxonomyGroup        = "Group"
	TaxonomySubGroup     = "SubGroup"
	TaxonomyBusinessArea = "Business area"
	TaxonomyPhase        = "Phase"
	TaxonomyType         = "Type"
	TaxonomyChannels     = "Channels"
)

// TaxonomyEntry is one row of categories.json.
type TaxonomyEntry struct {
	Taxonomy string `json:"Taxonomy"`
	Item     string `json:"Item"`
	Slug     string `json:"Slug,omitempty"`
	Parent   string `json:"Parent,omitempty"`
}

type GroupCount struct {
	Entry         TaxonomyEntry `json:"entry"`
	SubgroupCount int           `json:"subgroupCount"`
}

// UserGroup is a node of the nested user group tree.
type UserGroup struct {
	Id       string      `json:"id"`
	Label    string      `json:"label"`
	Aliases  []string    `json:"aliases,omitempty"`
	Children []UserGroup `json:"children,omitempty"`
}

// UserGroupEntry is a flattened, searchable level 2 or 3 user group.
type UserGroupEntry struct {
	Id               string   `json:"id"`
	Label            string   `json:"label"`
	Level            int      `json:"level"`
	Aliases          []string `json:"aliases"`
	ParentLabel      string   `json:"parentLabel"`
	GrandparentLabel string   `json:"grandparentLabel,omitempty"`
	SearchText       string   `json:"-"`
}
