package facet

import (
	"testing"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

func TestSortOptionsIgnoresCase(t *testing.T) {
	options := []types.FacetOption{
		{Value: "zeta", Text: "zeta"},
		{Value: "alpha", Text: "Alpha"},
		{Value: "beta", Text: "beta"},
		{Value: "alpha", Text: "alpha"},
		{Value: "gamma", Text: "Gamma"},
	}
	SortOptions(options)
	expected := []string{"Alpha", "alpha", "beta", "Gamma", "zeta"}
	for i, o := range options {
		if o.Text != expected[i] {
			t.Errorf("Position %d: expected %q, got %q", i, expected[i], o.Text)
		}
	}
}
