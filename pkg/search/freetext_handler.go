package search

import (
	"strings"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// KeywordMatcher is a case-insensitive substring test against a record's
// name. No other field is searched.
type KeywordMatcher struct {
	needle string
}

func NewKeywordMatcher(keywords string) *KeywordMatcher {
	return &KeywordMatcher{needle: strings.ToLower(strings.TrimSpace(keywords))}
}

// IsActive is false for blank keywords, which impose no constraint.
func (m *KeywordMatcher) IsActive() bool {
	return m.needle != ""
}

func (m *KeywordMatcher) Match(record *types.CatalogRecord) bool {
	if !m.IsActive() {
		return true
	}
	return strings.Contains(strings.ToLower(record.Name), m.needle)
}

// MatchQuery returns the positions of matching records, or nil when the
// keywords impose no constraint.
func (m *KeywordMatcher) MatchQuery(records []types.CatalogRecord) *types.ItemList {
	if !m.IsActive() {
		return nil
	}
	ret := types.NewItemList()
	for i := range records {
		if m.Match(&records[i]) {
			ret.AddId(types.ItemId(i))
		}
	}
	return ret
}
