// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential subject of the system: the account people log in
// with. Authorization over clinic resources is decided from its role set and
// its linked Owner profile, never from the user record alone.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The login identifier, stored lower-cased.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the password; never serialized outward.
	Roles        Roles     // The privilege tiers granted to this account.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is a verified caller as extracted from a valid access token.
// It is passed explicitly through every operation that needs to make an
// authorization decision; there is no ambient "current user" state.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Roles  Roles
}
