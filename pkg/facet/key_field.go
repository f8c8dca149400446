package facet

import (
	"github.com/DFE-Digital/fips-v4/pkg/search"
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// KeyField indexes record positions by the normalized token of one field.
// It is built for a single evaluation and discarded afterwards.
type KeyField struct {
	Name types.FacetName
	Keys map[search.Token]types.ItemList
}

func NewKeyField(name types.FacetName, records []types.CatalogRecord, field FieldFunc) *KeyField {
	f := &KeyField{
		Name: name,
		Keys: make(map[search.Token]types.ItemList),
	}
	for i := range records {
		token := search.Normalize(field(&records[i]))
		if token == "" {
			continue
		}
		if k, ok := f.Keys[token]; ok {
			k.AddId(types.ItemId(i))
		} else {
			f.Keys[token] = types.ItemList{types.ItemId(i): struct{}{}}
		}
	}
	return f
}

func (f *KeyField) Len() int {
	return len(f.Keys)
}

// Match returns the union of the positions for all tokens. Unknown tokens
// contribute nothing, so a selection of only unknown tokens matches no record.
func (f *KeyField) Match(tokens []string) *types.ItemList {
	ret := types.NewItemList()
	for _, token := range tokens {
		if ids, ok := f.Keys[token]; ok {
			ret.Merge(&ids)
		}
	}
	return ret
}
