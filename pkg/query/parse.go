package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// request mirrors the accepted query parameters. Page stays a string so a
// non numeric value can be read as page one instead of failing the decode.
type request struct {
	Phase        []string `schema:"phase"`
	BusinessArea []string `schema:"business-area"`
	Group        []string `schema:"group"`
	Type         []string `schema:"type"`
	Parent       []string `schema:"parent"`
	Subgroup     []string `schema:"subgroup"`
	User         []string `schema:"user"`
	Keywords     string   `schema:"keywords"`
	Page         string   `schema:"page"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Parse reads a selection from query values. Malformed input never fails:
// unknown keys are ignored, unticked checkbox sentinels are dropped and an
// invalid page becomes page one.
func Parse(values url.Values) *types.FilterSelection {
	req := request{}
	if err := decoder.Decode(&req, values); err != nil {
		logrus.WithError(err).Warn("could not decode query, using defaults")
		req = request{}
	}
	page, err := strconv.Atoi(strings.TrimSpace(req.Page))
	if err != nil {
		page = 1
	}
	return types.NewFilterSelection(map[types.FacetName][]string{
		types.FacetPhase:        req.Phase,
		types.FacetBusinessArea: req.BusinessArea,
		types.FacetGroup:        req.Group,
		types.FacetType:         req.Type,
		types.FacetParent:       req.Parent,
		types.FacetSubgroup:     req.Subgroup,
		types.FacetUser:         req.User,
	}, strings.TrimSpace(req.Keywords), page)
}

// ParseURL parses the query part of a request uri.
func ParseURL(rawURL string) (*types.FilterSelection, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return Parse(u.Query()), nil
}
