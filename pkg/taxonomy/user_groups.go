package taxonomy

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

type UserGroupSource interface {
	LoadUserGroups(ctx context.Context) ([]types.UserGroup, error)
}

// UserGroupIndex holds the searchable second and third levels of the user
// group tree. The top level only provides parent labels.
type UserGroupIndex struct {
	entries []types.UserGroupEntry
	byId    map[string]int
}

// LoadUserGroups builds an index from the source. On failure the index is
// empty and the error is returned alongside it.
func LoadUserGroups(ctx context.Context, source UserGroupSource) (*UserGroupIndex, error) {
	tree, err := source.LoadUserGroups(ctx)
	if err != nil {
		return NewUserGroupIndex(nil), err
	}
	return NewUserGroupIndex(tree), nil
}

func NewUserGroupIndex(tree []types.UserGroup) *UserGroupIndex {
	idx := &UserGroupIndex{
		entries: make([]types.UserGroupEntry, 0),
		byId:    make(map[string]int),
	}
	for _, level1 := range tree {
		for _, level2 := range level1.Children {
			idx.add(level2, 2, level1.Label, "")
			for _, level3 := range level2.Children {
				idx.add(level3, 3, level2.Label, level1.Label)
			}
		}
	}
	return idx
}

func (idx *UserGroupIndex) add(group types.UserGroup, level int, parent, grandparent string) {
	aliases := group.Aliases
	if aliases == nil {
		aliases = []string{}
	}
	words := append([]string{group.Label}, aliases...)
	idx.entries = append(idx.entries, types.UserGroupEntry{
		Id:               group.Id,
		Label:            group.Label,
		Level:            level,
		Aliases:          aliases,
		ParentLabel:      parent,
		GrandparentLabel: grandparent,
		SearchText:       strings.ToLower(strings.Join(words, " ")),
	})
	if _, ok := idx.byId[group.Id]; !ok {
		idx.byId[group.Id] = len(idx.entries) - 1
	}
}

func (idx *UserGroupIndex) Len() int {
	return len(idx.entries)
}

func (idx *UserGroupIndex) Find(id string) (*types.UserGroupEntry, bool) {
	i, ok := idx.byId[id]
	if !ok {
		return nil, false
	}
	e := idx.entries[i]
	return &e, true
}

// Label returns the display label for a user group id, or the id itself
// when it is unknown.
func (idx *UserGroupIndex) Label(id string) string {
	if e, ok := idx.Find(id); ok {
		return e.Label
	}
	return id
}

// Suggest matches q as a case-insensitive substring of label and aliases.
// Level 2 groups come before level 3, then labels alphabetically. A limit
// of zero or less returns every match.
func (idx *UserGroupIndex) Suggest(q string, limit int) []types.UserGroupEntry {
	needle := strings.ToLower(strings.TrimSpace(q))
	ret := make([]types.UserGroupEntry, 0)
	if needle == "" {
		return ret
	}
	for _, e := range idx.entries {
		if strings.Contains(e.SearchText, needle) {
			ret = append(ret, e)
		}
	}
	slices.SortStableFunc(ret, func(a, b types.UserGroupEntry) int {
		if c := cmp.Compare(a.Level, b.Level); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label))
	})
	if limit > 0 && len(ret) > limit {
		ret = ret[:limit]
	}
	return ret
}
