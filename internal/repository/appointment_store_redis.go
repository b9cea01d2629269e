package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"dental-clinic-backend/internal/domain/entity"
	domainRepo "dental-clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisAppointmentKeyPrefix = "appointment:"
	redisAppointmentIndexKey  = "appointments:index"

	// Guest-mode records are throwaway; they expire after a day.
	redisAppointmentTTL = 24 * time.Hour
)

// redisAppointmentStore is the ephemeral guest-mode appointment store.
// Records live as JSON values with a TTL plus a set index for listing.
type redisAppointmentStore struct {
	client *redis.Client
}

func NewRedisAppointmentStore(client *redis.Client) domainRepo.AppointmentStore {
	return &redisAppointmentStore{client: client}
}

// storedAppointment denormalizes the dentist name so listings never need
// Postgres in guest mode.
type storedAppointment struct {
	ID          uuid.UUID  `json:"id"`
	DentistID   uuid.UUID  `json:"dentist_id"`
	DentistName string     `json:"dentist_name"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	PatientName string     `json:"patient_name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (s *redisAppointmentStore) Create(ctx context.Context, appointment *entity.Appointment) error {
	record := storedAppointment{
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

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal appointment: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisAppointmentKeyPrefix+record.ID.String(), payload, redisAppointmentTTL)
	pipe.SAdd(ctx, redisAppointmentIndexKey, record.ID.String())
	_, err = pipe.Exec(ctx)
	return err
}

func (s *redisAppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	payload, err := s.client.Get(ctx, redisAppointmentKeyPrefix+id.String()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return unmarshalStored(payload)
}

func (s *redisAppointmentStore) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	ids, err := s.client.SMembers(ctx, redisAppointmentIndexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entity.Appointment{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisAppointmentKeyPrefix + id
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	appointments := make([]entity.Appointment, 0, len(values))
	var expired []interface{}
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Record expired; drop the dangling index member.
			expired = append(expired, ids[i])
			continue
		}
		appointment, err := unmarshalStored([]byte(raw))
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *appointment)
	}
	if len(expired) > 0 {
		s.client.SRem(ctx, redisAppointmentIndexKey, expired...)
	}

	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (s *redisAppointmentStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := s.client.Del(ctx, redisAppointmentKeyPrefix+id.String()).Result()
	if err != nil {
		return 0, err
	}
	s.client.SRem(ctx, redisAppointmentIndexKey, id.String())
	return deleted, nil
}

func (s *redisAppointmentStore) CountByDentist(ctx context.Context, dentistID uuid.UUID) (int64, error) {
	appointments, err := s.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, appointment := range appointments {
		if appointment.DentistID == dentistID {
			count++
		}
	}
	return count, nil
}

func (s *redisAppointmentStore) Count(ctx context.Context) (int64, error) {
	appointments, err := s.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(appointments)), nil
}

func unmarshalStored(payload []byte) (*entity.Appointment, error) {
	var record storedAppointment
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal appointment: %w", err)
	}

	appointment := &entity.Appointment{
		ID:          record.ID,
		DentistID:   record.DentistID,
		UserID:      record.UserID,
		PatientName: record.PatientName,
		Phone:       record.Phone,
		Email:       record.Email,
		Date:        record.Date,
		Time:        record.Time,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
	}
	if record.DentistName != "" {
		appointment.Dentist = &entity.Dentist{ID: record.DentistID, Name: record.DentistName}
	}
	return appointment, nil
}
