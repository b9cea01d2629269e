package dto

import "github.com/google/uuid"

// Request DTOs

type StartBookingFlowRequest struct {
	DentistID uuid.UUID `json:"dentist_id" validate:"required"`
}

// SubmitBookingDetailsRequest carries the Form step fields. Field-level
// validation mirrors appointment creation so errors surface before the
// Review step. Time may be omitted when resubmitting with a new date; the
// flow keeps or clears the stored time by the date-change rule.
type SubmitBookingDetailsRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	Phone       string `json:"phone" validate:"required,phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"omitempty,timeslot"`
	Notes       string `json:"notes" validate:"omitempty,max=2000"`
}

// Response DTOs

type BookingFlowResponse struct {
	ID          string               `json:"id"`
	State       string               `json:"state"`
	DentistID   uuid.UUID            `json:"dentist_id"`
	DentistName string               `json:"dentist_name,omitempty"`
	Draft       *BookingDraftDTO     `json:"draft,omitempty"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

type BookingDraftDTO struct {
	PatientName string `json:"patient_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
