package finder

import (
	"context"

	"github.com/DFE-Digital/fips-v4/pkg/index"
	"github.com/DFE-Digital/fips-v4/pkg/taxonomy"
	"github.com/DFE-Digital/fips-v4/pkg/types"
)

// Product returns one eligible record with its contacts. A load failure
// gives a degraded view and no error, an unknown or excluded id a
// *types.NotFoundError.
func (f *Finder) Product(ctx context.Context, id string) (*types.ProductView, error) {
	noProductViews.Inc()
	record, err := f.Catalog.FindById(ctx, id)
	if err != nil {
		if !types.IsDataLoadError(err) {
			return nil, err
		}
		var errs problems
		errs.add(err)
		return &types.ProductView{
			Contacts: []types.Contact{},
			Degraded: true,
			Problems: errs,
		}, nil
	}
	return &types.ProductView{
		Product:  record,
		Contacts: index.Contacts(record, f.EmailDomain, f.ShowEmails),
	}, nil
}

// Categories extends Product with the record's flattened components.
func (f *Finder) Categories(ctx context.Context, id string) (*types.CategoriesView, error) {
	view, err := f.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	ret := &types.CategoriesView{
		ProductView:   *view,
		CategoryTypes: []string{},
		Components:    []types.Component{},
	}
	if view.Product != nil {
		ret.CategoryTypes = index.CategoryTypes(view.Product)
		ret.Components = index.Components(view.Product)
	}
	return ret, nil
}

// Groups lists every group with its number of subgroups.
func (f *Finder) Groups(ctx context.Context) *types.GroupsView {
	table, err := f.Taxonomy.Load(ctx)
	if err != nil {
		var errs problems
		errs.add(err)
		return &types.GroupsView{Groups: []types.GroupCount{}, Degraded: true, Problems: errs}
	}
	return &types.GroupsView{Groups: table.GroupsWithSubgroupCounts()}
}

// Group resolves a group by slug or label token and lists its subgroups.
func (f *Finder) Group(ctx context.Context, key string) (*types.GroupView, error) {
	table, err := f.Taxonomy.Load(ctx)
	if err != nil {
		var errs problems
		errs.add(err)
		return &types.GroupView{Subgroups: []types.TaxonomyEntry{}, Degraded: true, Problems: errs}, nil
	}
	group, err := table.FindBySlugOrLabel(types.TaxonomyGroup, key)
	if err != nil {
		return nil, err
	}
	return &types.GroupView{
		Group:     group,
		Subgroups: table.SubgroupsOf(group.Item),
	}, nil
}

// SuggestUsers returns user groups matching q for autocomplete.
func (f *Finder) SuggestUsers(ctx context.Context, q string, limit int) *types.UserSuggestions {
	users, err := taxonomy.LoadUserGroups(ctx, f.Users)
	if err != nil {
		var errs problems
		errs.add(err)
		return &types.UserSuggestions{Users: []types.UserGroupEntry{}, Degraded: true, Problems: errs}
	}
	return &types.UserSuggestions{Users: users.Suggest(q, limit)}
}
