package usecase

import (
	"context"
	"time"

	"dental-clinic-backend/internal/converter"
	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const auditLogLimit = 200

type AdminUsecase interface {
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	GetAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	dentistRepo  repository.DentistRepository
	store        repository.AppointmentStore
	auditLogRepo repository.AuditLogRepository
	now          func() time.Time
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	dentistRepo repository.DentistRepository,
	store repository.AppointmentStore,
	auditLogRepo repository.AuditLogRepository,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		dentistRepo:  dentistRepo,
		store:        store,
		auditLogRepo: auditLogRepo,
		now:          time.Now,
	}
}

// GetStats computes the dashboard aggregate counts. The patient count is the
// derived roster size, recomputed like every other read of it.
func (u *adminUsecase) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	dentists, err := u.dentistRepo.Count(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count dentists: %+v", err)
		return nil, err
	}

	total, err := u.store.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	appointments, err := u.store.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	today := u.now().Format("2006-01-02")
	var todayCount int64
	for _, apt := range appointments {
		if apt.Date == today {
			todayCount++
		}
	}

	patients := AggregatePatients(appointments, u.now())

	return &dto.AdminStatsResponse{
		Dentists:          dentists,
		Appointments:      total,
		Patients:          len(patients),
		AppointmentsToday: todayCount,
	}, nil
}

func (u *adminUsecase) GetAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), auditLogLimit)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *converter.AuditLogToResponse(&logs[i])
	}

	return &dto.AuditLogListResponse{
		Logs:  responses,
		Total: len(responses),
	}, nil
}
