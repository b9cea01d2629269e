package converter

import (
	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO. The
// dentist name is denormalized and soft-fails to an empty string.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		DentistID:   appointment.DentistID,
		DentistName: appointment.DentistName(),
		UserID:      appointment.UserID,
		PatientName: appointment.PatientName,
		Phone:       appointment.Phone,
		Email:       appointment.Email,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Notes:       appointment.Notes,
		CreatedAt:   appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
