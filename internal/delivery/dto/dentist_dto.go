package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDentistRequest struct {
	Name           string              `json:"name" validate:"required,min=2"`
	Specialty      string              `json:"specialty" validate:"required"`
	Photo          string              `json:"photo" validate:"required,httpurl"`
	Bio            string              `json:"bio" validate:"required"`
	AvailableSlots map[string][]string `json:"available_slots" validate:"required"`
}

// Response DTOs

type DentistResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	Specialty      string              `json:"specialty"`
	Rating         decimal.Decimal     `json:"rating"`
	Photo          string              `json:"photo"`
	Bio            string              `json:"bio"`
	AvailableSlots map[string][]string `json:"available_slots"`
	AvailableDays  []string            `json:"available_days"`
	CreatedAt      time.Time           `json:"created_at"`
}

type DentistListResponse struct {
	Dentists []DentistResponse `json:"dentists"`
	Total    int               `json:"total"`
}

// NextSlotResponse is the derived "next available" label for a dentist card.
type NextSlotResponse struct {
	Available bool   `json:"available"`
	Label     string `json:"label"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
}
