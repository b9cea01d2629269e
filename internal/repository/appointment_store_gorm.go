package repository

import (
	"context"
	"errors"

	"dental-clinic-backend/internal/domain/entity"
	domainRepo "dental-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormAppointmentStore is the durable Postgres-backed appointment store.
type gormAppointmentStore struct {
	db *gorm.DB
}

func NewGormAppointmentStore(db *gorm.DB) domainRepo.AppointmentStore {
	return &gormAppointmentStore{db: db}
}

func (s *gormAppointmentStore) Create(ctx context.Context, appointment *entity.Appointment) error {
	return s.db.WithContext(ctx).Create(appointment).Error
}

func (s *gormAppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := s.db.WithContext(ctx).Preload("Dentist").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (s *gormAppointmentStore) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := s.db.WithContext(ctx).
		Preload("Dentist").
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *gormAppointmentStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (s *gormAppointmentStore) CountByDentist(ctx context.Context, dentistID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("dentist_id = ?", dentistID).
		Count(&count).Error
	return count, err
}

func (s *gormAppointmentStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}
