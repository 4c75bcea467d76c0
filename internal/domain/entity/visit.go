package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// VisitStatus is the lifecycle state of a clinic visit.
type VisitStatus string

const (
	// VisitStatusUpcoming is the initial state of every new visit.
	VisitStatusUpcoming VisitStatus = "UPCOMING"
	// VisitStatusCompleted is a terminal state.
	VisitStatusCompleted VisitStatus = "COMPLETED"
	// VisitStatusCancelled is a terminal state.
	VisitStatusCancelled VisitStatus = "CANCELLED"
)

// ErrInvalidStatusTransition is returned when a visit status change does not
// follow the state machine: UPCOMING may move to COMPLETED or CANCELLED,
// terminal states never move again.
var ErrInvalidStatusTransition = errors.New("invalid visit status transition")

// IsValid checks if the VisitStatus is a valid value.
func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitStatusUpcoming, VisitStatusCompleted, VisitStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status accepts no further transitions.
func (s VisitStatus) IsTerminal() bool {
	return s == VisitStatusCompleted || s == VisitStatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving to next.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	if s == next {
		return true
	}

	return s == VisitStatusUpcoming && next.IsValid()
}

// Visit records an appointment between one Pet and one Vet. Both references
// must exist when the visit is created; a visit cannot outlive its pet.
type Visit struct {
	ID          uuid.UUID
	PetID       uuid.UUID
	VetID       uuid.UUID
	VisitDate   time.Time
	Description string
	Status      VisitStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransitionTo applies a status change, enforcing the state machine.
func (v *Visit) TransitionTo(next VisitStatus) error {
	if !next.IsValid() {
		return errors.Wrapf(ErrInvalidStatusTransition, "unknown status %q", next)
	}
	if !v.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidStatusTransition, "%s -> %s", v.Status, next)
	}
	v.Status = next

	return nil
}
