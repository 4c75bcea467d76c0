package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet always belongs to exactly one Owner; an orphaned pet must not exist.
// Deleting an owner removes their pets, and deleting a pet removes its visits.
type Pet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Breed     string
	BirthDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
