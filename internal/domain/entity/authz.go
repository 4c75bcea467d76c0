package entity

// Action is the kind of access a caller requests on a resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionDeleteCascade is the account-wide cascading removal of a user
	// and everything it transitively owns.
	ActionDeleteCascade Action = "delete_cascade"
)

// ResourceType names the kinds of resources authorization is decided over.
type ResourceType string

const (
	ResourceOwner ResourceType = "owner"
	ResourcePet   ResourceType = "pet"
	ResourceVisit ResourceType = "visit"
	ResourceVet   ResourceType = "vet"
	ResourceUser  ResourceType = "user"
)
