package usecase

import (
	"context"
	"errors"
	"time"

	"dental-clinic-backend/internal/converter"
	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/entity"
	"dental-clinic-backend/internal/domain/repository"
	"dental-clinic-backend/internal/service"
	"dental-clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidPhone        = errors.New("invalid phone number format")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest, userID *uuid.UUID) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) error
}

type appointmentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	store        repository.AppointmentStore
	dentistRepo  repository.DentistRepository
	auditService *service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	store repository.AppointmentStore,
	dentistRepo repository.DentistRepository,
	auditService *service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:           db,
		log:          log,
		store:        store,
		dentistRepo:  dentistRepo,
		auditService: auditService,
	}
}

// CreateAppointment validates the request, checks the dentist exists and
// inserts the record. No overlap check: concurrent bookings for the same
// dentist, date and time are all accepted.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest, userID *uuid.UUID) (*dto.AppointmentResponse, error) {
	if !validator.IsValidPhone(req.Phone) {
		return nil, ErrInvalidPhone
	}

	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", req.DentistID, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	// ID and createdAt are server-assigned regardless of the backend.
	appointment := &entity.Appointment{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		DentistID:   dentist.ID,
		UserID:      userID,
		PatientName: req.PatientName,
		Phone:       validator.NormalizePhone(req.Phone),
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		Dentist:     dentist,
	}

	if err := u.store.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, userID, entity.AuditActionAppointmentCreate, map[string]interface{}{
		"appointment_id": appointment.ID.String(),
		"dentist_id":     dentist.ID.String(),
		"date":           appointment.Date,
		"time":           appointment.Time,
	})

	u.log.Infof("Appointment created: id=%s, dentist=%s, date=%s %s", appointment.ID, dentist.ID, appointment.Date, appointment.Time)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.store.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// GetAllAppointments lists every appointment with the dentist name
// denormalized; an unresolved dentist yields an empty name, not an error.
func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.store.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// DeleteAppointment removes the record unconditionally, past or future.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) error {
	affected, err := u.store.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(ctx, actorID, entity.AuditActionAppointmentDelete, map[string]interface{}{
		"appointment_id": id.String(),
	})
	return nil
}
