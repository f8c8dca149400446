package types

import (
	"context"
	"sync"
)

// Merger is a custom merging strategy hook.
type Merger = func(ctx context.Context, current *ItemList, next *ItemList, isFirst bool)

// QueryMerger coordinates concurrent set operations over ItemLists.
// Semantics (default constructor):
//
//	First Add with a non-nil result -> seed result with that set.
//	Subsequent Adds -> result = result ∩ next
//	Add returning nil -> no restriction.
type QueryMerger struct {
	ctx     context.Context
	wg      sync.WaitGroup
	l       sync.Mutex
	isFirst bool
	merger  Merger
	result  *ItemList
}

// NewQueryMerger builds a QueryMerger with seed + intersect semantics.
func NewQueryMerger(ctx context.Context, result *ItemList) *QueryMerger {
	return NewCustomMerger(ctx, result, func(ctx context.Context, current *ItemList, next *ItemList, isFirst bool) {
		if isFirst {
			current.Merge(next)
		} else {
			current.Intersect(*next)
		}
	})
}

func NewCustomMerger(ctx context.Context, result *ItemList, merger Merger) *QueryMerger {
	return &QueryMerger{
		ctx:     ctx,
		isFirst: true,
		result:  result,
		merger:  merger,
	}
}

// Add evaluates a constraint in the background and merges it into the result.
func (m *QueryMerger) Add(getResult func(ctx context.Context) *ItemList) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		items := getResult(m.ctx)
		if items == nil {
			return
		}
		m.l.Lock()
		m.merger(m.ctx, m.result, items, m.isFirst)
		m.isFirst = false
		m.l.Unlock()
	}()
}

// Wait blocks until all operations complete. It reports whether any
// constraint was merged.
func (m *QueryMerger) Wait() bool {
	m.wg.Wait()
	return !m.isFirst
}
