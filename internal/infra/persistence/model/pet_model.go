package model

import (
	"time"

	"github.com/google/uuid"
)

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Breed     string    `gorm:"type:varchar(100)"`
	BirthDate time.Time `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Visits []VisitModel `gorm:"foreignKey:PetID"`
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
