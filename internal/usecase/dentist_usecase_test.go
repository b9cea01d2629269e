package usecase

import (
	"context"
	"errors"
	"testing"

	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func newDentistFixture(dentists ...*entity.Dentist) (DentistUsecase, *fakeDentistRepo, *fakeAppointmentStore, *fakeAuditLogRepo) {
	repo := newFakeDentistRepo(dentists...)
	store := &fakeAppointmentStore{}
	audit := &fakeAuditLogRepo{}
	uc := NewDentistUsecase(testDB(), testLogger(), repo, store, testAuditService(audit))
	return uc, repo, store, audit
}

func TestDeleteDentistWithAppointmentsRejected(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	uc, repo, store, _ := newDentistFixture(dentist)
	store.appointments = []entity.Appointment{
		{ID: uuid.New(), DentistID: dentist.ID, Date: "2025-09-01", Time: "09:00"},
	}

	err := uc.DeleteDentist(context.Background(), dentist.ID, nil)
	if !errors.Is(err, ErrDentistInUse) {
		t.Fatalf("DeleteDentist() error = %v, want %v", err, ErrDentistInUse)
	}
	if _, ok := repo.dentists[dentist.ID]; !ok {
		t.Error("dentist was removed despite being referenced")
	}
}

func TestDeleteDentistWithoutAppointments(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	uc, repo, _, audit := newDentistFixture(dentist)

	if err := uc.DeleteDentist(context.Background(), dentist.ID, nil); err != nil {
		t.Fatalf("DeleteDentist() error = %v", err)
	}
	if _, ok := repo.dentists[dentist.ID]; ok {
		t.Error("dentist still present after delete")
	}
	if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionDentistDelete {
		t.Errorf("audit actions = %v, want one %s", audit.actions, entity.AuditActionDentistDelete)
	}
}

func TestDeleteDentistOnlyCountsOwnAppointments(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	uc, repo, store, _ := newDentistFixture(dentist)
	store.appointments = []entity.Appointment{
		{ID: uuid.New(), DentistID: uuid.New(), Date: "2025-09-01", Time: "09:00"},
	}

	if err := uc.DeleteDentist(context.Background(), dentist.ID, nil); err != nil {
		t.Fatalf("DeleteDentist() error = %v", err)
	}
	if _, ok := repo.dentists[dentist.ID]; ok {
		t.Error("dentist still present after delete")
	}
}

func TestDeleteDentistMissing(t *testing.T) {
	uc, _, _, _ := newDentistFixture()

	err := uc.DeleteDentist(context.Background(), uuid.New(), nil)
	if !errors.Is(err, ErrDentistNotFound) {
		t.Errorf("DeleteDentist() error = %v, want %v", err, ErrDentistNotFound)
	}
}

func createDentistRequest(slotKey string) dto.CreateDentistRequest {
	return dto.CreateDentistRequest{
		Name:           "Dr. Asha Rai",
		Specialty:      "Orthodontist",
		Photo:          "https://example.com/photo.jpg",
		Bio:            "Orthodontics, braces and clear aligners.",
		AvailableSlots: map[string][]string{slotKey: {"09:00"}},
	}
}

func TestCreateDentistRejectsBadSlots(t *testing.T) {
	uc, repo, _, _ := newDentistFixture()

	req := createDentistRequest("Mondy")
	_, err := uc.CreateDentist(context.Background(), &req, nil)
	if !errors.Is(err, ErrInvalidSlots) {
		t.Fatalf("CreateDentist() error = %v, want %v", err, ErrInvalidSlots)
	}
	if len(repo.dentists) != 0 {
		t.Error("dentist stored despite invalid slots")
	}
}

func TestCreateDentistNormalizesSlots(t *testing.T) {
	uc, _, _, _ := newDentistFixture()

	req := createDentistRequest("2025-09-01")
	resp, err := uc.CreateDentist(context.Background(), &req, nil)
	if err != nil {
		t.Fatalf("CreateDentist() error = %v", err)
	}
	if _, ok := resp.AvailableSlots["Monday"]; !ok {
		t.Errorf("slots = %v, want ISO date folded onto Monday", resp.AvailableSlots)
	}
	if len(resp.AvailableDays) != 1 || resp.AvailableDays[0] != "Monday" {
		t.Errorf("availableDays = %v, want [Monday]", resp.AvailableDays)
	}
}
