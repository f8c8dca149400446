package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

func mustValues(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return v
}

func TestParse(t *testing.T) {
	sel := Parse(mustValues(t, "phase=live&phase=_unchecked&phase=beta&phase=live&business-area=funding_policy&keywords=+%20Pupil%20+&page=3&colour=red"))
	assert.Equal(t, []string{"live", "beta"}, sel.Tokens(types.FacetPhase))
	assert.Equal(t, []string{"funding_policy"}, sel.Tokens(types.FacetBusinessArea))
	assert.Equal(t, "Pupil", sel.Keywords)
	assert.Equal(t, 3, sel.Page)
	assert.Equal(t, []types.FacetName{types.FacetPhase, types.FacetBusinessArea}, sel.ActiveFacets())
}

func TestParsePageCoercion(t *testing.T) {
	for raw, expected := range map[string]int{
		"":           1,
		"page=":      1,
		"page=abc":   1,
		"page=0":     1,
		"page=-3":    1,
		"page=7":     7,
		"page=2&x=1": 2,
	} {
		assert.Equal(t, expected, Parse(mustValues(t, raw)).Page, raw)
	}
}

func TestParseSentinelOnly(t *testing.T) {
	sel := Parse(mustValues(t, "user=_unchecked&group=_unchecked"))
	assert.True(t, sel.IsEmpty())
}

func TestParseURL(t *testing.T) {
	sel, err := ParseURL("/products?type=service&user=teachers")
	require.NoError(t, err)
	assert.Equal(t, []string{"service"}, sel.Tokens(types.FacetType))
	assert.Equal(t, []string{"teachers"}, sel.Tokens(types.FacetUser))
}

func TestBuildRemovalLinkRoundTrip(t *testing.T) {
	link := BuildRemovalLink("/products?phase=live&phase=beta&keywords=pupil%20premium&page=2", types.FacetPhase, "beta")
	assert.Equal(t, "/products?phase=live&keywords=pupil%20premium&page=2", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, []string{"live"}, q["phase"])
	assert.Equal(t, "pupil premium", q.Get("keywords"))
	assert.Equal(t, "2", q.Get("page"))
}

func TestBuildRemovalLink(t *testing.T) {
	tests := []struct {
		url      string
		facet    types.FacetName
		token    string
		expected string
	}{
		{"/products?phase=live", types.FacetPhase, "live", "/products"},
		{"/products?type=live&phase=live", types.FacetPhase, "live", "/products?type=live"},
		{"/products?business-area=funding_policy&phase=beta", types.FacetBusinessArea, "funding_policy", "/products?phase=beta"},
		{"/products?group=a%20b&group=c", types.FacetGroup, "a b", "/products?group=c"},
		{"/products?phase=live", types.FacetPhase, "beta", "/products?phase=live"},
		{"/products", types.FacetPhase, "beta", "/products"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, BuildRemovalLink(test.url, test.facet, test.token), test.url)
	}
}

func TestSerializeActiveSelection(t *testing.T) {
	sel := types.NewFilterSelection(map[types.FacetName][]string{
		types.FacetUser:   {"teachers"},
		types.FacetType:   {"service", "product"},
		types.FacetPhase:  {"live"},
		types.FacetParent: {},
	}, "pupil premium", 4)
	assert.Equal(t, "phase=live&type=service&type=product&user=teachers&keywords=pupil+premium", SerializeActiveSelection(sel))
	assert.Equal(t, "", SerializeActiveSelection(types.NewFilterSelection(nil, "", 2)))
}

func TestClearFiltersURL(t *testing.T) {
	assert.Equal(t, "/products", ClearFiltersURL("/products?phase=live&page=2"))
}

type labels map[string]string

func (l labels) Label(id string) string {
	if v, ok := l[id]; ok {
		return v
	}
	return id
}

func TestSelectedFilters(t *testing.T) {
	current := "/products?subgroup=grants&phase=live&user=teachers&user=ghost&type=unknown"
	sel, err := ParseURL(current)
	require.NoError(t, err)
	facets := types.Facets{
		types.FacetPhase:    {{Value: "live", Text: "Live", Count: 2}},
		types.FacetSubgroup: {{Value: "grants", Text: "Grants", Count: 1}},
	}
	got := SelectedFilters(current, sel, facets, labels{"teachers": "Teachers"})
	expected := []types.SelectedFilter{
		{Facet: types.FacetPhase, Heading: "Phase", RemovalLink: "/products?subgroup=grants&user=teachers&user=ghost&type=unknown", Text: "Live"},
		{Facet: types.FacetType, Heading: "Type", RemovalLink: "/products?subgroup=grants&phase=live&user=teachers&user=ghost", Text: "unknown"},
		{Facet: types.FacetSubgroup, Heading: "Sub-group", RemovalLink: "/products?phase=live&user=teachers&user=ghost&type=unknown", Text: "grants"},
		{Facet: types.FacetUser, Heading: "User", RemovalLink: "/products?subgroup=grants&phase=live&user=ghost&type=unknown", Text: "Teachers"},
		{Facet: types.FacetUser, Heading: "User", RemovalLink: "/products?subgroup=grants&phase=live&user=teachers&type=unknown", Text: "ghost"},
	}
	assert.Equal(t, expected, got)
}
