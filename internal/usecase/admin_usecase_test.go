package usecase

import (
	"context"
	"testing"
	"time"

	"dental-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func TestGetStats(t *testing.T) {
	dentistA := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	dentistB := &entity.Dentist{ID: uuid.New(), Name: "Dr. Omar Khan"}
	store := &fakeAppointmentStore{appointments: []entity.Appointment{
		{ID: uuid.New(), DentistID: dentistA.ID, PatientName: "Jane Doe", Phone: "+15551234567", Date: "2025-03-20", Time: "09:30", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), DentistID: dentistA.ID, PatientName: "Jane Doe", Phone: "+15551234567", Date: "2025-03-10", Time: "10:00", CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), DentistID: dentistB.ID, PatientName: "John Roe", Phone: "+15557654321", Date: "2025-03-19", Time: "14:00", CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
	}}

	uc := &adminUsecase{
		db:           testDB(),
		log:          testLogger(),
		dentistRepo:  newFakeDentistRepo(dentistA, dentistB),
		store:        store,
		auditLogRepo: &fakeAuditLogRepo{},
		now:          func() time.Time { return time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC) },
	}

	stats, err := uc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.Dentists != 2 {
		t.Errorf("dentists = %d, want 2", stats.Dentists)
	}
	if stats.Appointments != 3 {
		t.Errorf("appointments = %d, want 3", stats.Appointments)
	}
	if stats.Patients != 2 {
		t.Errorf("patients = %d, want 2 distinct contacts", stats.Patients)
	}
	if stats.AppointmentsToday != 1 {
		t.Errorf("appointmentsToday = %d, want 1", stats.AppointmentsToday)
	}
}
