package query

import (
	"net/url"
	"strings"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// BuildRemovalLink returns path and query of currentURL without the given
// token of one facet. Every other parameter keeps its position and raw
// encoding.
func BuildRemovalLink(currentURL string, facet types.FacetName, token string) string {
	u, err := url.Parse(currentURL)
	if err != nil {
		return currentURL
	}
	kept := make([]string, 0)
	for _, part := range strings.Split(u.RawQuery, "&") {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, kerr := url.QueryUnescape(rawKey)
		value, verr := url.QueryUnescape(rawValue)
		if kerr == nil && verr == nil && key == string(facet) && value == token {
			continue
		}
		kept = append(kept, part)
	}
	return withQuery(u.Path, strings.Join(kept, "&"))
}

// SerializeActiveSelection encodes the selection in facet order followed by
// keywords. Page is left out so the result can prefix pagination links.
func SerializeActiveSelection(sel *types.FilterSelection) string {
	parts := make([]string, 0)
	for _, name := range types.FacetOrder {
		for _, token := range sel.Tokens(name) {
			parts = append(parts, url.QueryEscape(string(name))+"="+url.QueryEscape(token))
		}
	}
	if sel.Keywords != "" {
		parts = append(parts, "keywords="+url.QueryEscape(sel.Keywords))
	}
	return strings.Join(parts, "&")
}

// ClearFiltersURL is the request path with no query.
func ClearFiltersURL(currentURL string) string {
	u, err := url.Parse(currentURL)
	if err != nil {
		return currentURL
	}
	return u.Path
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}

// UserLabels resolves user group ids to display labels.
type UserLabels interface {
	Label(id string) string
}

// SelectedFilters lists one removable entry per selected token in facet
// order. Labels come from the facet options, users from the user group
// index and subgroups show their token.
func SelectedFilters(currentURL string, sel *types.FilterSelection, facets types.Facets, users UserLabels) []types.SelectedFilter {
	ret := make([]types.SelectedFilter, 0)
	for _, name := range types.FacetOrder {
		for _, token := range sel.Tokens(name) {
			text := token
			switch name {
			case types.FacetSubgroup:
			case types.FacetUser:
				if users != nil {
					text = users.Label(token)
				}
			default:
				if label, ok := facets.Text(name, token); ok {
					text = label
				}
			}
			ret = append(ret, types.SelectedFilter{
				Facet:       name,
				Heading:     name.Heading(),
				RemovalLink: BuildRemovalLink(currentURL, name, token),
				Text:        text,
			})
		}
	}
	return ret
}
