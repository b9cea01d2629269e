package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a booked visit. UserID is nil for guest bookings.
// Appointments are created and deleted, never updated in place.
type Appointment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DentistID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"dentist_id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	PatientName string     `gorm:"type:varchar(255);not null" json:"patient_name"`
	Phone       string     `gorm:"type:varchar(20);not null" json:"phone"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Date        string     `gorm:"type:varchar(10);not null" json:"date"`
	Time        string     `gorm:"type:varchar(5);not null" json:"time"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Dentist *Dentist `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DentistName resolves the denormalized dentist name for listings.
// An unresolved join yields an empty string, not an error.
func (a *Appointment) DentistName() string {
	if a.Dentist == nil {
		return ""
	}
	return a.Dentist.Name
}

// ContactKey is the grouping identity for the derived patient view:
// email when present, phone otherwise.
func (a *Appointment) ContactKey() string {
	if a.Email != "" {
		return a.Email
	}
	return a.Phone
}
