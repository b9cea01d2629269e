package usecase

import (
	"context"
	"errors"

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

var ErrNoUpdateFields = errors.New("no fields to update")

type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService *service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService *service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// UpdateUser patches profile fields. At least one field must be supplied.
func (u *userUsecase) UpdateUser(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !req.HasUpdates() {
		return nil, ErrNoUpdateFields
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = validator.NormalizePhone(*req.Phone)
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user %s: %+v", id, err)
		return nil, err
	}

	u.auditService.Record(ctx, &id, entity.AuditActionUserUpdate, nil)
	return converter.UserToResponse(user), nil
}
