package types

// ItemId is the position of a record inside one evaluated working set.
type ItemId uint32

// Component is one entry of a record's categories mapping.
type Component struct {
	Type        string `json:"type,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// CatalogRecord mirrors one object of the catalog file. The json keys are
// the catalog schema and must not change.
type CatalogRecord struct {
	Id                string                 `json:"id"`
	Name              string                 `json:"Name,omitempty"`
	Description       string                 `json:"Description,omitempty"`
	Phase             string                 `json:"phase,omitempty"`
	BusinessArea      string                 `json:"business-area,omitempty"`
	Parent            string                 `json:"Parent,omitempty"`
	Type              string                 `json:"Type,omitempty"`
	OperationalStatus string                 `json:"Operational Status,omitempty"`
	Categories        map[string][]Component `json:"categories,omitempty"`

	OwnedBy                string `json:"Owned By,omitempty"`
	SeniorResponsibleOwner string `json:"Senior Responsible Owner,omitempty"`
	DeliveryManager        string `json:"Delivery Manager,omitempty"`
	InformationAssetOwner  string `json:"Information Asset Owner,omitempty"`
	AssignedTo             string `json:"Assigned To,omitempty"`
	ServiceDesk            string `json:"Service Desk,omitempty"`
}

// ContactRole names a person-valued field of a record.
type ContactRole string

const (
	RoleOwnedBy                ContactRole = "Owned By"
	RoleSeniorResponsibleOwner ContactRole = "Senior Responsible Owner"
	RoleDeliveryManager        ContactRole = "Delivery Manager"
	RoleInformationAssetOwner  ContactRole = "Information Asset Owner"
	RoleAssignedTo             ContactRole = "Assigned To"
	RoleServiceDesk            ContactRole = "Service Desk"
)

// ContactRoles are the roles shown as contacts, in display order. Service
// Desk and Assigned To are not people to contact.
var ContactRoles = []ContactRole{
	RoleOwnedBy,
	RoleSeniorResponsibleOwner,
	RoleDeliveryManager,
	RoleInformationAssetOwner,
}

func (r *CatalogRecord) GetContact(role ContactRole) string {
	switch role {
	case RoleOwnedBy:
		return r.OwnedBy
	case RoleSeniorResponsibleOwner:
		return r.SeniorResponsibleOwner
	case RoleDeliveryManager:
		return r.DeliveryManager
	case RoleInformationAssetOwner:
		return r.InformationAssetOwner
	case RoleAssignedTo:
		return r.AssignedTo
	case RoleServiceDesk:
		return r.ServiceDesk
	}
	return ""
}

type Contact struct {
	Role  ContactRole `json:"role"`
	Name  string      `json:"name"`
	Email string      `json:"email,omitempty"`
}
