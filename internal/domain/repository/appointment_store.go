package repository

import (
	"context"

	"dental-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentStore is the persistence contract for appointments. Two
// implementations exist: a durable Postgres store for server deployments and
// an ephemeral Redis store for the guest/demo mode. The backend is chosen
// once at bootstrap, so the interface is context-based rather than taking a
// *gorm.DB like the other repositories.
type AppointmentStore interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountByDentist(ctx context.Context, dentistID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
