package facet

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/DFE-Digital/fips-v4/pkg/search"
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

var (
	tracerName = "fips-finder-facets"
	tracer     = otel.Tracer(tracerName)
)

func SpannedFetcher(fn func() *types.ItemList, name string, attrs ...attribute.KeyValue) func(ctx context.Context) *types.ItemList {
	return func(ctx context.Context) *types.ItemList {
		_, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
		defer span.End()
		return fn()
	}
}

// FilterEngine applies a selection to a record set. Tokens of one facet are
// OR'ed, facets and keywords are AND'ed.
type FilterEngine struct{}

func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Apply returns the matching records in their input order. An empty
// selection returns a copy of all records.
func (e *FilterEngine) Apply(ctx context.Context, records []types.CatalogRecord, sel *types.FilterSelection) []types.CatalogRecord {
	ctx, span := tracer.Start(ctx, "FilterEngine.Apply")
	defer span.End()

	result := types.NewItemList()
	qm := types.NewQueryMerger(ctx, result)

	for _, facetName := range sel.ActiveFacets() {
		field, ok := FieldFor(facetName)
		if !ok {
			continue
		}
		tokens := sel.Tokens(facetName)
		qm.Add(SpannedFetcher(func() *types.ItemList {
			return NewKeyField(facetName, records, field).Match(tokens)
		}, "Match facet", attribute.String("facet", string(facetName))))
	}

	keywords := search.NewKeywordMatcher(sel.Keywords)
	if keywords.IsActive() {
		qm.Add(SpannedFetcher(func() *types.ItemList {
			return keywords.MatchQuery(records)
		}, "Match keywords"))
	}

	if !qm.Wait() {
		ret := make([]types.CatalogRecord, len(records))
		copy(ret, records)
		return ret
	}

	ret := make([]types.CatalogRecord, 0, result.Len())
	for i := range records {
		if result.Contains(types.ItemId(i)) {
			ret = append(ret, records[i])
		}
	}
	span.SetAttributes(attribute.Int("matches", len(ret)))
	return ret
}
