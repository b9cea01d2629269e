package usecase

import (
	"testing"
	"time"

	"dental-clinic-backend/internal/domain/entity"
)

var aggNow = time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

func appointmentFor(name, phone, email, date, timeOfDay, dentist string, createdAt time.Time) entity.Appointment {
	return entity.Appointment{
		PatientName: name,
		Phone:       phone,
		Email:       email,
		Date:        date,
		Time:        timeOfDay,
		CreatedAt:   createdAt,
		Dentist:     &entity.Dentist{Name: dentist},
	}
}

func TestAggregatePatientsGroupsByEmail(t *testing.T) {
	created := aggNow.AddDate(0, 0, -10)
	appointments := []entity.Appointment{
		appointmentFor("Jane Doe", "+15550001", "jane@example.com", "2025-03-10", "09:00", "Dr. Asha Rai", created),
		appointmentFor("Jane D.", "+15550002", "jane@example.com", "2025-03-12", "10:00", "Dr. Kiran Sharma", created.Add(time.Hour)),
	}

	patients := AggregatePatients(appointments, aggNow)
	if len(patients) != 1 {
		t.Fatalf("got %d patients, want 1", len(patients))
	}

	p := patients[0]
	if p.Name != "Jane Doe" {
		t.Errorf("name = %q, want the first appointment's name", p.Name)
	}
	if p.TotalAppointments != 2 {
		t.Errorf("totalAppointments = %d, want 2", p.TotalAppointments)
	}
	if len(p.Dentists) != 2 || p.Dentists[0] != "Dr. Asha Rai" || p.Dentists[1] != "Dr. Kiran Sharma" {
		t.Errorf("dentists = %v, want sorted pair", p.Dentists)
	}
}

func TestAggregatePatientsFallsBackToPhone(t *testing.T) {
	created := aggNow.AddDate(0, 0, -5)
	appointments := []entity.Appointment{
		appointmentFor("Sam", "+15550003", "", "2025-03-15", "09:00", "Dr. Asha Rai", created),
		appointmentFor("Sam", "+15550003", "", "2025-03-16", "09:00", "Dr. Asha Rai", created.Add(time.Hour)),
		appointmentFor("Other", "+15550004", "", "2025-03-16", "10:00", "Dr. Asha Rai", created),
	}

	patients := AggregatePatients(appointments, aggNow)
	if len(patients) != 2 {
		t.Fatalf("got %d patients, want 2", len(patients))
	}
}

func TestAggregatePatientsLastVisitByCalendarDate(t *testing.T) {
	created := aggNow.AddDate(0, 0, -20)
	appointments := []entity.Appointment{
		// Later time of day on an earlier date must not win.
		appointmentFor("Jane", "+15550001", "jane@example.com", "2025-03-01", "16:00", "Dr. Asha Rai", created),
		appointmentFor("Jane", "+15550001", "jane@example.com", "2025-03-05", "09:00", "Dr. Kiran Sharma", created.Add(time.Hour)),
		// Same date as current lastVisit: not strictly more recent, ignored.
		appointmentFor("Jane", "+15550001", "jane@example.com", "2025-03-05", "15:00", "Dr. Meera Joshi", created.Add(2*time.Hour)),
	}

	patients := AggregatePatients(appointments, aggNow)
	if len(patients) != 1 {
		t.Fatalf("got %d patients, want 1", len(patients))
	}

	last := patients[0].LastVisit
	if last.Date != "2025-03-05" || last.Time != "09:00" || last.DentistName != "Dr. Kiran Sharma" {
		t.Errorf("lastVisit = %+v, want 2025-03-05 09:00 Dr. Kiran Sharma", last)
	}
}

func TestAggregatePatientsFirstVisitByCreatedAt(t *testing.T) {
	early := aggNow.AddDate(0, -2, 0)
	late := aggNow.AddDate(0, 0, -1)
	appointments := []entity.Appointment{
		appointmentFor("Jane", "+15550001", "jane@example.com", "2025-03-19", "09:00", "Dr. Asha Rai", late),
		appointmentFor("Jane", "+15550001", "jane@example.com", "2025-01-20", "09:00", "Dr. Asha Rai", early),
	}

	patients := AggregatePatients(appointments, aggNow)
	if !patients[0].FirstVisit.Equal(early) {
		t.Errorf("firstVisit = %v, want %v", patients[0].FirstVisit, early)
	}
}

func TestAggregatePatientsIsActive(t *testing.T) {
	tests := []struct {
		name       string
		lastVisit  string
		wantActive bool
	}{
		{"visit yesterday", "2025-03-19", true},
		{"visit exactly 30 days ago", "2025-02-18", true},
		{"visit 31 days ago", "2025-02-17", false},
		{"visit months ago", "2024-11-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointments := []entity.Appointment{
				appointmentFor("Jane", "+15550001", "jane@example.com", tt.lastVisit, "09:00", "Dr. Asha Rai", aggNow.AddDate(0, -6, 0)),
			}
			patients := AggregatePatients(appointments, aggNow)
			if patients[0].IsActive != tt.wantActive {
				t.Errorf("isActive = %v, want %v", patients[0].IsActive, tt.wantActive)
			}
		})
	}
}

func TestAggregatePatientsUnresolvedDentist(t *testing.T) {
	apt := entity.Appointment{
		PatientName: "Jane",
		Phone:       "+15550001",
		Date:        "2025-03-10",
		Time:        "09:00",
		CreatedAt:   aggNow.AddDate(0, 0, -10),
	}

	patients := AggregatePatients([]entity.Appointment{apt}, aggNow)
	if len(patients[0].Dentists) != 0 {
		t.Errorf("dentists = %v, want empty for unresolved join", patients[0].Dentists)
	}
	if patients[0].LastVisit.DentistName != "" {
		t.Errorf("lastVisit dentist = %q, want empty", patients[0].LastVisit.DentistName)
	}
}

func TestAggregatePatientsSortsByLastVisitDesc(t *testing.T) {
	created := aggNow.AddDate(0, 0, -10)
	appointments := []entity.Appointment{
		appointmentFor("Old", "+15550001", "old@example.com", "2025-01-10", "09:00", "Dr. Asha Rai", created),
		appointmentFor("Recent", "+15550002", "recent@example.com", "2025-03-18", "09:00", "Dr. Asha Rai", created),
	}

	patients := AggregatePatients(appointments, aggNow)
	if patients[0].Name != "Recent" || patients[1].Name != "Old" {
		t.Errorf("order = [%s, %s], want most recent first", patients[0].Name, patients[1].Name)
	}
}

func TestAggregatePatientsEmpty(t *testing.T) {
	patients := AggregatePatients(nil, aggNow)
	if len(patients) != 0 {
		t.Errorf("got %d patients from no appointments", len(patients))
	}
}
