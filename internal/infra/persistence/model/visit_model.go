package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel mirrors the 'visits' table.
type VisitModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PetID       uuid.UUID `gorm:"type:uuid;not null;index"`
	VetID       uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitDate   time.Time `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(16);not null;default:'UPCOMING'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
