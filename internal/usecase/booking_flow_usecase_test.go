package usecase

import (
	"context"
	"errors"
	"testing"

	"dental-clinic-backend/internal/booking"
	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

func newBookingFlowFixture(dentist *entity.Dentist, flows ...*booking.Flow) (BookingFlowUsecase, *fakeFlowStore, *fakeAppointmentStore) {
	var dentists *fakeDentistRepo
	if dentist != nil {
		dentists = newFakeDentistRepo(dentist)
	} else {
		dentists = newFakeDentistRepo()
	}
	store := &fakeAppointmentStore{}
	audit := &fakeAuditLogRepo{}
	appointments := NewAppointmentUsecase(testDB(), testLogger(), store, dentists, testAuditService(audit))
	sessions := newFakeFlowStore(flows...)
	uc := NewBookingFlowUsecase(testDB(), testLogger(), sessions, dentists, appointments, testAuditService(audit))
	return uc, sessions, store
}

func submitDetailsRequest() dto.SubmitBookingDetailsRequest {
	return dto.SubmitBookingDetailsRequest{
		PatientName: "Jane Doe",
		Phone:       "+15551234567",
		Email:       "jane@example.com",
		Date:        "2025-09-01",
		Time:        "09:30",
	}
}

func TestSubmitDetailsAdvancesToReview(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	flow := booking.NewFlow(dentist.ID)
	uc, sessions, _ := newBookingFlowFixture(dentist, flow)

	req := submitDetailsRequest()
	resp, err := uc.SubmitDetails(context.Background(), flow.ID, &req)
	if err != nil {
		t.Fatalf("SubmitDetails() error = %v", err)
	}
	if resp.State != string(booking.StateReview) {
		t.Errorf("state = %q, want %q", resp.State, booking.StateReview)
	}

	saved, _ := sessions.Find(context.Background(), flow.ID)
	if saved == nil || saved.State != booking.StateReview {
		t.Errorf("persisted flow = %+v, want review state", saved)
	}
}

func TestSubmitDetailsUnknownFlow(t *testing.T) {
	uc, _, _ := newBookingFlowFixture(nil)

	req := submitDetailsRequest()
	_, err := uc.SubmitDetails(context.Background(), "missing", &req)
	if !errors.Is(err, ErrFlowNotFound) {
		t.Errorf("SubmitDetails() error = %v, want %v", err, ErrFlowNotFound)
	}
}

func TestSubmitDetailsInvalidDraftPersisted(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	flow := booking.NewFlow(dentist.ID)
	uc, sessions, _ := newBookingFlowFixture(dentist, flow)

	req := submitDetailsRequest()
	req.Time = ""

	_, err := uc.SubmitDetails(context.Background(), flow.ID, &req)
	if !errors.Is(err, booking.ErrDraftInvalid) {
		t.Fatalf("SubmitDetails() error = %v, want %v", err, booking.ErrDraftInvalid)
	}

	// The rejected input must survive the round trip so the client can fix
	// only what is missing.
	saved, _ := sessions.Find(context.Background(), flow.ID)
	if saved == nil {
		t.Fatal("flow discarded after invalid submission")
	}
	if saved.State != booking.StateForm {
		t.Errorf("state = %q, want %q", saved.State, booking.StateForm)
	}
	if saved.Draft.PatientName != "Jane Doe" || saved.Draft.Date != "2025-09-01" {
		t.Errorf("persisted draft = %+v, want submitted fields kept", saved.Draft)
	}
}

func TestSubmitDetailsDateChangeClearsStoredTime(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	flow := booking.NewFlow(dentist.ID)
	flow.Draft = booking.Draft{
		PatientName: "Jane Doe",
		Phone:       "+15551234567",
		Date:        "2025-09-01",
		Time:        "09:30",
	}
	uc, sessions, _ := newBookingFlowFixture(dentist, flow)

	req := submitDetailsRequest()
	req.Date = "2025-09-02"
	req.Time = ""

	_, err := uc.SubmitDetails(context.Background(), flow.ID, &req)
	if !errors.Is(err, booking.ErrDraftInvalid) {
		t.Fatalf("SubmitDetails() error = %v, want %v", err, booking.ErrDraftInvalid)
	}

	saved, _ := sessions.Find(context.Background(), flow.ID)
	if saved == nil {
		t.Fatal("flow not persisted")
	}
	if saved.Draft.Date != "2025-09-02" {
		t.Errorf("date = %q, want new selection kept", saved.Draft.Date)
	}
	if saved.Draft.Time != "" {
		t.Errorf("time = %q, want cleared after date change", saved.Draft.Time)
	}
}

func TestConfirmCreatesAppointmentAndDiscardsFlow(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	flow := booking.NewFlow(dentist.ID)
	flow.State = booking.StateReview
	flow.Draft = booking.Draft{
		PatientName: "Jane Doe",
		Phone:       "+15551234567",
		Date:        "2025-09-01",
		Time:        "09:30",
	}
	uc, sessions, store := newBookingFlowFixture(dentist, flow)

	resp, err := uc.Confirm(context.Background(), flow.ID, nil)
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if resp.State != string(booking.StateConfirmed) {
		t.Errorf("state = %q, want %q", resp.State, booking.StateConfirmed)
	}
	if resp.Appointment == nil || resp.Appointment.ID == uuid.Nil {
		t.Error("confirmed response missing created appointment")
	}
	if len(store.appointments) != 1 {
		t.Fatalf("stored %d appointments, want 1", len(store.appointments))
	}

	saved, _ := sessions.Find(context.Background(), flow.ID)
	if saved != nil {
		t.Error("confirmed flow still in session store")
	}
}

func TestConfirmFailureKeepsReviewSession(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	flow := booking.NewFlow(dentist.ID)
	flow.State = booking.StateReview
	flow.Draft = booking.Draft{
		PatientName: "Jane Doe",
		Phone:       "+15551234567",
		Date:        "2025-09-01",
		Time:        "09:30",
	}
	uc, sessions, store := newBookingFlowFixture(dentist, flow)
	store.createErr = errors.New("insert failed")

	_, err := uc.Confirm(context.Background(), flow.ID, nil)
	if err == nil {
		t.Fatal("Confirm() error = nil, want creation failure")
	}

	saved, _ := sessions.Find(context.Background(), flow.ID)
	if saved == nil {
		t.Fatal("flow discarded after failed confirmation")
	}
	if saved.State != booking.StateReview {
		t.Errorf("state = %q, want %q so the client can retry", saved.State, booking.StateReview)
	}
}

func TestCancelDiscardsFlow(t *testing.T) {
	dentist := &entity.Dentist{ID: uuid.New(), Name: "Dr. Asha Rai"}
	flow := booking.NewFlow(dentist.ID)
	uc, sessions, _ := newBookingFlowFixture(dentist, flow)

	if err := uc.Cancel(context.Background(), flow.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if saved, _ := sessions.Find(context.Background(), flow.ID); saved != nil {
		t.Error("cancelled flow still in session store")
	}
}
