package index

import (
	"slices"
	"strings"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

const DefaultEmailDomain = "education.gov.uk"

// NameToEmail turns "First Last ..." into first.last@domain. Names with
// fewer than two parts have no address.
func NameToEmail(name, domain string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[0]) + "." + strings.ToLower(parts[1]) + "@" + domain
}

// Contacts lists the record's non-empty contact roles in display order.
func Contacts(record *types.CatalogRecord, domain string, withEmail bool) []types.Contact {
	ret := make([]types.Contact, 0, len(types.ContactRoles))
	for _, role := range types.ContactRoles {
		name := record.GetContact(role)
		if strings.TrimSpace(name) == "" {
			continue
		}
		c := types.Contact{Role: role, Name: name}
		if withEmail {
			c.Email = NameToEmail(name, domain)
		}
		ret = append(ret, c)
	}
	return ret
}

// CategoryTypes returns the record's category keys sorted by name.
func CategoryTypes(record *types.CatalogRecord) []string {
	keys := make([]string, 0, len(record.Categories))
	for key := range record.Categories {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Components flattens all categories. A component without its own type
// takes the category key.
func Components(record *types.CatalogRecord) []types.Component {
	ret := make([]types.Component, 0)
	for _, key := range CategoryTypes(record) {
		for _, c := range record.Categories[key] {
			if c.Type == "" {
				c.Type = key
			}
			ret = append(ret, c)
		}
	}
	return ret
}
