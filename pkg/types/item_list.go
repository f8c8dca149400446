package types

import (
	"maps"
	"slices"
)

// ItemList is a set of record positions.
type ItemList map[ItemId]struct{}

func NewItemList() *ItemList {
	return &ItemList{}
}

func (i ItemList) AddId(id ItemId) {
	i[id] = struct{}{}
}

func (i ItemList) Contains(id ItemId) bool {
	_, ok := i[id]
	return ok
}

func (i ItemList) Len() int {
	return len(i)
}

func (i ItemList) IsEmpty() bool {
	return len(i) == 0
}

func (a ItemList) Intersect(b ItemList) {
	for id := range a {
		if _, ok := b[id]; !ok {
			delete(a, id)
		}
	}
}

func (i ItemList) Merge(other *ItemList) {
	if other == nil {
		return
	}
	maps.Copy(i, *other)
}

// ToSlice returns the ids in ascending order.
func (i ItemList) ToSlice() []ItemId {
	ids := slices.Collect(maps.Keys(i))
	slices.Sort(ids)
	return ids
}
