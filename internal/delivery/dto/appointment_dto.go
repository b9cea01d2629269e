package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DentistID   uuid.UUID `json:"dentist_id" validate:"required"`
	PatientName string    `json:"patient_name" validate:"required"`
	Phone       string    `json:"phone" validate:"required,phone"`
	Email       string    `json:"email" validate:"omitempty,email"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string    `json:"time" validate:"required,timeslot"`
	Notes       string    `json:"notes" validate:"omitempty,max=2000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	DentistID   uuid.UUID  `json:"dentist_id"`
	DentistName string     `json:"dentist_name"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	PatientName string     `json:"patient_name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
