package converter

import (
	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/entity"
)

// DentistToResponse converts a Dentist entity to DentistResponse DTO
func DentistToResponse(dentist *entity.Dentist) *dto.DentistResponse {
	if dentist == nil {
		return nil
	}

	return &dto.DentistResponse{
		ID:             dentist.ID,
		Name:           dentist.Name,
		Specialty:      dentist.Specialty,
		Rating:         dentist.Rating,
		Photo:          dentist.Photo,
		Bio:            dentist.Bio,
		AvailableSlots: dentist.AvailableSlots,
		AvailableDays:  dentist.AvailableSlots.Weekdays(),
		CreatedAt:      dentist.CreatedAt,
	}
}

// DentistsToResponses converts a slice of Dentist entities to DTOs
func DentistsToResponses(dentists []entity.Dentist) []dto.DentistResponse {
	responses := make([]dto.DentistResponse, len(dentists))
	for i := range dentists {
		responses[i] = *DentistToResponse(&dentists[i])
	}
	return responses
}
