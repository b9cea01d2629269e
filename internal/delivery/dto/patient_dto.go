package dto

import "time"

// PatientResponse is a derived roster entry, recomputed on every read from
// the appointment list. Nothing here is persisted.
type PatientResponse struct {
	Name              string         `json:"name"`
	Phone             string         `json:"phone"`
	Email             string         `json:"email,omitempty"`
	TotalAppointments int            `json:"total_appointments"`
	LastVisit         VisitResponse  `json:"last_visit"`
	FirstVisit        time.Time      `json:"first_visit"`
	Dentists          []string       `json:"dentists"`
	IsActive          bool           `json:"is_active"`
}

type VisitResponse struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	DentistName string `json:"dentist_name"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Summary  PatientSummary    `json:"summary"`
}

// PatientSummary mirrors the admin roster header counts.
type PatientSummary struct {
	TotalPatients     int `json:"total_patients"`
	ActivePatients    int `json:"active_patients"`
	NewThisMonth      int `json:"new_this_month"`
	ReturningPatients int `json:"returning_patients"`
}
