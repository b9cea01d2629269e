package repository

import (
	"errors"

	"dental-clinic-backend/internal/domain/entity"
	domainRepo "dental-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dentistRepository struct{}

func NewDentistRepository() domainRepo.DentistRepository {
	return &dentistRepository{}
}

func (r *dentistRepository) Create(db *gorm.DB, dentist *entity.Dentist) error {
	return db.Create(dentist).Error
}

func (r *dentistRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := db.Where("id = ?", id).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}

func (r *dentistRepository) FindAll(db *gorm.DB, specialty string) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	query := db.Order("name ASC")
	if specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}
	if err := query.Find(&dentists).Error; err != nil {
		return nil, err
	}
	return dentists, nil
}

func (r *dentistRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Dentist{})
	return result.RowsAffected, result.Error
}

func (r *dentistRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Dentist{}).Count(&count).Error
	return count, err
}
