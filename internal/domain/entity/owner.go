package entity

import (
	"time"

	"github.com/google/uuid"
)

// Owner is the pet-owner profile paired with exactly one User account.
// Every resource a regular user may touch traces back to their Owner.
type Owner struct {
	ID        uuid.UUID // The unique identifier for the owner profile.
	UserID    uuid.UUID // The linked account; exactly one per owner.
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
