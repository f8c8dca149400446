package finder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/DFE-Digital/fips-v4/pkg/facet"
	"github.com/DFE-Digital/fips-v4/pkg/index"
	"github.com/DFE-Digital/fips-v4/pkg/paging"
	"github.com/DFE-Digital/fips-v4/pkg/query"
	"github.com/DFE-Digital/fips-v4/pkg/taxonomy"
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// Source provides every data file the finder reads.
type Source interface {
	index.CatalogSource
	taxonomy.Source
	taxonomy.UserGroupSource
}

// Finder evaluates listings and product views. Every call reloads its
// sources, so a Finder holds no per-request state and is safe for concurrent
// use.
type Finder struct {
	Catalog     *index.CatalogStore
	Taxonomy    *taxonomy.Store
	Users       taxonomy.UserGroupSource
	Engine      *facet.FilterEngine
	Aggregator  *facet.Aggregator
	PageSize    int
	EmailDomain string
	ShowEmails  bool
}

type Option func(*Finder)

func WithPageSize(size int) Option {
	return func(f *Finder) {
		if size > 0 {
			f.PageSize = size
		}
	}
}

func WithAggregation(opts facet.AggregationOptions) Option {
	return func(f *Finder) {
		f.Aggregator = facet.NewAggregator(opts)
	}
}

// WithEmails derives contact addresses in the given domain.
func WithEmails(domain string) Option {
	return func(f *Finder) {
		if domain != "" {
			f.EmailDomain = domain
		}
		f.ShowEmails = true
	}
}

func New(source Source, policy index.ExclusionPolicy, opts ...Option) *Finder {
	f := &Finder{
		Catalog:     index.NewCatalogStore(source, policy),
		Taxonomy:    taxonomy.NewStore(source),
		Users:       source,
		Engine:      facet.NewFilterEngine(),
		Aggregator:  facet.NewAggregator(facet.DefaultAggregationOptions()),
		PageSize:    paging.DefaultPageSize,
		EmailDomain: index.DefaultEmailDomain,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// problems collects load failures of one call. Anything that is not a
// *types.DataLoadError is logged as well but reported by its message only.
type problems []string

func (p *problems) add(err error) {
	source := "unknown"
	var dl *types.DataLoadError
	if errors.As(err, &dl) {
		source = dl.Source
	}
	noDegraded.WithLabelValues(source).Inc()
	logrus.WithError(err).WithField("source", source).Warn("data load failed, returning degraded result")
	*p = append(*p, err.Error())
}

func (p problems) degraded() bool {
	return len(p) > 0
}

// Evaluate runs one listing for a request uri such as
// "/products?phase=live&page=2".
func (f *Finder) Evaluate(ctx context.Context, requestURI string) *types.ResultEnvelope {
	sel, err := query.ParseURL(requestURI)
	if err != nil {
		logrus.WithError(err).WithField("uri", requestURI).Warn("unparsable request uri, using empty selection")
		sel = types.NewFilterSelection(nil, "", 1)
	}
	return f.EvaluateSelection(ctx, requestURI, sel)
}

// EvaluateSelection filters, aggregates and paginates the eligible catalog.
// When a source cannot be loaded the envelope is empty and Degraded is set.
func (f *Finder) EvaluateSelection(ctx context.Context, requestURI string, sel *types.FilterSelection) *types.ResultEnvelope {
	start := time.Now()
	noEvaluations.Inc()
	defer func() {
		evaluationSeconds.Observe(time.Since(start).Seconds())
	}()

	var errs problems
	records, err := f.Catalog.Eligible(ctx)
	if err != nil {
		errs.add(err)
	}
	table, err := f.Taxonomy.Load(ctx)
	if err != nil {
		errs.add(err)
	}
	users, err := taxonomy.LoadUserGroups(ctx, f.Users)
	if err != nil {
		errs.add(err)
	}

	var filtered []types.CatalogRecord
	facets := emptyFacets()
	if errs.degraded() {
		filtered = []types.CatalogRecord{}
	} else {
		filtered = f.Engine.Apply(ctx, records, sel)
		facets = f.Aggregator.ComputeFacets(filtered, records, table)
	}
	resultSize.Observe(float64(len(filtered)))

	page := paging.Paginate(filtered, sel.Page, f.PageSize)
	return &types.ResultEnvelope{
		RequestId:       uuid.New().String(),
		Page:            page.Items,
		TotalResults:    page.TotalResults,
		TotalPages:      page.TotalPages,
		CurrentPage:     page.CurrentPage,
		HasNextPage:     page.HasNextPage,
		HasPrevPage:     page.HasPrevPage,
		Facets:          facets,
		SelectedFilters: query.SelectedFilters(requestURI, sel, facets, users),
		Keywords:        sel.Keywords,
		BaseQuery:       query.SerializeActiveSelection(sel),
		ClearFiltersUrl: query.ClearFiltersURL(requestURI),
		Degraded:        errs.degraded(),
		Problems:        errs,
	}
}

func emptyFacets() types.Facets {
	ret := make(types.Facets, len(types.FacetOrder))
	for _, name := range types.FacetOrder {
		if name != types.FacetUser {
			ret[name] = []types.FacetOption{}
		}
	}
	return ret
}
