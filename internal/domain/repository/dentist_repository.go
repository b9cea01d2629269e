package repository

import (
	"dental-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DentistRepository interface {
	Create(db *gorm.DB, dentist *entity.Dentist) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Dentist, error)
	FindAll(db *gorm.DB, specialty string) ([]entity.Dentist, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
