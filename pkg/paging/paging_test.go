package paging

import (
	"math"
	"strconv"
	"testing"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

func makeRecords(n int) []types.CatalogRecord {
	ret := make([]types.CatalogRecord, n)
	for i := range ret {
		ret[i] = types.CatalogRecord{Id: strconv.Itoa(i + 1)}
	}
	return ret
}

func TestPaginate(t *testing.T) {
	records := makeRecords(30)
	tests := []struct {
		page    int
		items   int
		first   string
		current int
		next    bool
		prev    bool
	}{
		{1, 12, "1", 1, true, false},
		{2, 12, "13", 2, true, true},
		{3, 6, "25", 3, false, true},
		{99, 0, "", 99, false, true},
		{1000000000000000000, 0, "", 1000000000000000000, false, true},
		{math.MaxInt, 0, "", math.MaxInt, false, true},
		{0, 12, "1", 1, true, false},
		{-4, 12, "1", 1, true, false},
	}
	for _, test := range tests {
		p := Paginate(records, test.page, DefaultPageSize)
		if len(p.Items) != test.items {
			t.Errorf("page %d: expected %d items, got %d", test.page, test.items, len(p.Items))
		}
		if test.items > 0 && p.Items[0].Id != test.first {
			t.Errorf("page %d: expected first id %s, got %s", test.page, test.first, p.Items[0].Id)
		}
		if p.TotalPages != 3 || p.TotalResults != 30 {
			t.Errorf("page %d: expected 3 pages of 30, got %d of %d", test.page, p.TotalPages, p.TotalResults)
		}
		if p.CurrentPage != test.current {
			t.Errorf("page %d: expected current %d, got %d", test.page, test.current, p.CurrentPage)
		}
		if p.HasNextPage != test.next || p.HasPrevPage != test.prev {
			t.Errorf("page %d: expected next=%v prev=%v, got next=%v prev=%v", test.page, test.next, test.prev, p.HasNextPage, p.HasPrevPage)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate(nil, 1, DefaultPageSize)
	if p.TotalPages != 0 || p.TotalResults != 0 || len(p.Items) != 0 || p.HasNextPage || p.HasPrevPage {
		t.Errorf("Unexpected empty page %+v", p)
	}
	if p.Items == nil {
		t.Error("Items must not be nil")
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	p := Paginate(makeRecords(24), 2, 12)
	if p.TotalPages != 2 || p.HasNextPage || len(p.Items) != 12 {
		t.Errorf("Unexpected last page %+v", p)
	}
	if p := Paginate(makeRecords(5), 1, 0); len(p.Items) != 5 || p.TotalPages != 1 {
		t.Errorf("Expected default page size, got %+v", p)
	}
}

func TestPaginateHugePageSize(t *testing.T) {
	if p := Paginate(makeRecords(5), 1, math.MaxInt); len(p.Items) != 5 || p.TotalPages != 1 || p.HasNextPage {
		t.Errorf("Unexpected single page %+v", p)
	}
	if p := Paginate(makeRecords(5), 2, math.MaxInt); len(p.Items) != 0 || p.HasNextPage || !p.HasPrevPage {
		t.Errorf("Unexpected page past the end %+v", p)
	}
}
