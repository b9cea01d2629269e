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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDentistNotFound = errors.New("dentist not found")
	ErrDentistInUse    = errors.New("dentist has existing appointments")
	ErrInvalidSlots    = errors.New("invalid available slots")
	ErrInvalidDate     = errors.New("invalid date format, use YYYY-MM-DD")
)

var defaultRating = decimal.NewFromFloat(5.0)

type DentistUsecase interface {
	CreateDentist(ctx context.Context, req *dto.CreateDentistRequest, actorID *uuid.UUID) (*dto.DentistResponse, error)
	GetDentist(ctx context.Context, id uuid.UUID) (*dto.DentistResponse, error)
	GetAllDentists(ctx context.Context, specialty string) (*dto.DentistListResponse, error)
	DeleteDentist(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) error
	GetAvailableSlots(ctx context.Context, id uuid.UUID, startDate, endDate string) (map[string][]string, error)
	GetNextAvailable(ctx context.Context, id uuid.UUID) (*dto.NextSlotResponse, error)
}

type dentistUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	dentistRepo  repository.DentistRepository
	store        repository.AppointmentStore
	auditService *service.AuditService
	now          func() time.Time
}

func NewDentistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	dentistRepo repository.DentistRepository,
	store repository.AppointmentStore,
	auditService *service.AuditService,
) DentistUsecase {
	return &dentistUsecase{
		db:           db,
		log:          log,
		dentistRepo:  dentistRepo,
		store:        store,
		auditService: auditService,
		now:          time.Now,
	}
}

// CreateDentist validates the profile and normalizes the slot mapping to the
// canonical weekday keying before anything is stored.
func (u *dentistUsecase) CreateDentist(ctx context.Context, req *dto.CreateDentistRequest, actorID *uuid.UUID) (*dto.DentistResponse, error) {
	slots, err := entity.NormalizeSlotMap(req.AvailableSlots)
	if err != nil {
		u.log.Warnf("Rejected slot map for dentist %q: %+v", req.Name, err)
		return nil, ErrInvalidSlots
	}

	dentist := &entity.Dentist{
		Name:           req.Name,
		Specialty:      req.Specialty,
		Rating:         defaultRating,
		Photo:          req.Photo,
		Bio:            req.Bio,
		AvailableSlots: slots,
	}

	if err := u.dentistRepo.Create(u.db.WithContext(ctx), dentist); err != nil {
		u.log.Warnf("Failed to create dentist: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, actorID, entity.AuditActionDentistCreate, map[string]interface{}{
		"dentist_id": dentist.ID.String(),
		"name":       dentist.Name,
		"specialty":  dentist.Specialty,
	})

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) GetDentist(ctx context.Context, id uuid.UUID) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", id, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) GetAllDentists(ctx context.Context, specialty string) (*dto.DentistListResponse, error) {
	dentists, err := u.dentistRepo.FindAll(u.db.WithContext(ctx), specialty)
	if err != nil {
		u.log.Warnf("Failed to find dentists: %+v", err)
		return nil, err
	}

	return &dto.DentistListResponse{
		Dentists: converter.DentistsToResponses(dentists),
		Total:    len(dentists),
	}, nil
}

// DeleteDentist refuses to remove a dentist that any appointment still
// references.
func (u *dentistUsecase) DeleteDentist(ctx context.Context, id uuid.UUID, actorID *uuid.UUID) error {
	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", id, err)
		return err
	}
	if dentist == nil {
		return ErrDentistNotFound
	}

	references, err := u.store.CountByDentist(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to count appointments for dentist %s: %+v", id, err)
		return err
	}
	if references > 0 {
		return ErrDentistInUse
	}

	affected, err := u.dentistRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete dentist %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDentistNotFound
	}

	u.auditService.Record(ctx, actorID, entity.AuditActionDentistDelete, map[string]interface{}{
		"dentist_id": id.String(),
		"name":       dentist.Name,
	})
	return nil
}

// GetAvailableSlots returns the raw weekly availability, or a projection
// onto concrete dates when both range bounds are given.
func (u *dentistUsecase) GetAvailableSlots(ctx context.Context, id uuid.UUID, startDate, endDate string) (map[string][]string, error) {
	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", id, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	if startDate == "" || endDate == "" {
		return dentist.AvailableSlots, nil
	}

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return dentist.AvailableSlots.ExpandRange(start, end), nil
}

func (u *dentistUsecase) GetNextAvailable(ctx context.Context, id uuid.UUID) (*dto.NextSlotResponse, error) {
	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", id, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	next, ok := dentist.AvailableSlots.NextAvailable(u.now(), entity.DefaultHorizonDays)
	if !ok {
		return &dto.NextSlotResponse{Available: false, Label: "No slots"}, nil
	}

	return &dto.NextSlotResponse{
		Available: true,
		Label:     next.Label,
		Date:      next.Date.Format("2006-01-02"),
		Time:      next.Time,
	}, nil
}
