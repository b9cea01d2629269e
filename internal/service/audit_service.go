package service

import (
	"context"

	"dental-clinic-backend/internal/domain/entity"
	"dental-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records admin and booking actions. Recording is best-effort:
// a failed audit write never fails the action it describes.
type AuditService struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditLogRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (s *AuditService) Record(ctx context.Context, userID *uuid.UUID, action string, metadata map[string]interface{}) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: entity.JSON(metadata),
	}

	if err := s.auditLogRepo.Create(s.db.WithContext(ctx), auditLog); err != nil {
		s.log.Warnf("Failed to record audit log %s: %+v", action, err)
	}
}
