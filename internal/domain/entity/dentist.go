package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dentist represents a dentist profile browsable on the public site.
// AvailableSlots is the recurring weekly availability keyed by weekday name.
type Dentist struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Specialty      string          `gorm:"type:varchar(255);not null;index" json:"specialty"`
	Rating         decimal.Decimal `gorm:"type:decimal(2,1);not null;default:5.0" json:"rating"`
	Photo          string          `gorm:"type:text;not null" json:"photo"`
	Bio            string          `gorm:"type:text;not null" json:"bio"`
	AvailableSlots SlotMap         `gorm:"type:jsonb;not null" json:"available_slots"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DentistID" json:"appointments,omitempty"`
}

func (Dentist) TableName() string {
	return "dentists"
}
