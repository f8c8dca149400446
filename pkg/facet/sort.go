package facet

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// SortOptions orders options by display text, ignoring case. Equal texts
// fall back to exact text and then value so the order is stable.
func SortOptions(options []types.FacetOption) {
	c := collate.New(language.English, collate.IgnoreCase)
	slices.SortFunc(options, func(a, b types.FacetOption) int {
		return cmp.Or(
			c.CompareString(a.Text, b.Text),
			cmp.Compare(a.Text, b.Text),
			cmp.Compare(a.Value, b.Value),
		)
	})
}
