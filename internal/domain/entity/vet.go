package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vet is an independent clinic entity with no ownership chain; access to it
// is decided purely by role.
type Vet struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Phone          string
	Specialization string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
