package usecase

import (
	"context"
	"sort"
	"time"

	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/entity"
	"dental-clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// activeWindow is how recently a patient must have visited to count as
// active.
const activeWindow = 30 * 24 * time.Hour

type PatientUsecase interface {
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log   *logrus.Logger
	store repository.AppointmentStore
	now   func() time.Time
}

func NewPatientUsecase(log *logrus.Logger, store repository.AppointmentStore) PatientUsecase {
	return &patientUsecase{
		log:   log,
		store: store,
		now:   time.Now,
	}
}

// GetAllPatients recomputes the derived roster from the full appointment
// list on every read. Patients are never persisted.
func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	appointments, err := u.store.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	patients := AggregatePatients(appointments, u.now())

	summary := dto.PatientSummary{TotalPatients: len(patients)}
	cutoff := u.now().Add(-activeWindow)
	for _, p := range patients {
		if p.IsActive {
			summary.ActivePatients++
		}
		if !p.FirstVisit.Before(cutoff) {
			summary.NewThisMonth++
		}
		if p.TotalAppointments > 1 {
			summary.ReturningPatients++
		}
	}

	return &dto.PatientListResponse{
		Patients: patients,
		Summary:  summary,
	}, nil
}

// AggregatePatients groups appointments by contact identity (email when
// present, phone otherwise) and folds each group into one roster entry.
//
// The first appointment encountered seeds the record; later ones overwrite
// lastVisit only when strictly more recent by calendar date, and firstVisit
// only when strictly older by createdAt. A patient is active when the last
// visit date falls within 30 days of now.
func AggregatePatients(appointments []entity.Appointment, now time.Time) []dto.PatientResponse {
	type patientAccum struct {
		dto.PatientResponse
		dentists map[string]struct{}
	}

	byKey := map[string]*patientAccum{}
	order := []string{}

	for i := range appointments {
		apt := &appointments[i]
		key := apt.ContactKey()

		accum, seen := byKey[key]
		if !seen {
			accum = &patientAccum{
				PatientResponse: dto.PatientResponse{
					Name:  apt.PatientName,
					Phone: apt.Phone,
					Email: apt.Email,
					LastVisit: dto.VisitResponse{
						Date:        apt.Date,
						Time:        apt.Time,
						DentistName: apt.DentistName(),
					},
					FirstVisit: apt.CreatedAt,
				},
				dentists: map[string]struct{}{},
			}
			byKey[key] = accum
			order = append(order, key)
		}

		accum.TotalAppointments++
		if name := apt.DentistName(); name != "" {
			accum.dentists[name] = struct{}{}
		}

		if laterCalendarDate(apt.Date, accum.LastVisit.Date) {
			accum.LastVisit = dto.VisitResponse{
				Date:        apt.Date,
				Time:        apt.Time,
				DentistName: apt.DentistName(),
			}
		}
		if apt.CreatedAt.Before(accum.FirstVisit) {
			accum.FirstVisit = apt.CreatedAt
		}
	}

	cutoff := now.Add(-activeWindow)
	patients := make([]dto.PatientResponse, 0, len(order))
	for _, key := range order {
		accum := byKey[key]
		accum.Dentists = make([]string, 0, len(accum.dentists))
		for name := range accum.dentists {
			accum.Dentists = append(accum.Dentists, name)
		}
		sort.Strings(accum.Dentists)

		if visit, err := time.Parse("2006-01-02", accum.LastVisit.Date); err == nil {
			accum.IsActive = !visit.Before(cutoff)
		}
		patients = append(patients, accum.PatientResponse)
	}

	// Most recently seen patients first.
	sort.SliceStable(patients, func(i, j int) bool {
		return patients[i].LastVisit.Date > patients[j].LastVisit.Date
	})
	return patients
}

// laterCalendarDate compares two ISO dates as calendar dates, ignoring the
// appointment time of day.
func laterCalendarDate(candidate, current string) bool {
	a, errA := time.Parse("2006-01-02", candidate)
	b, errB := time.Parse("2006-01-02", current)
	if errA != nil || errB != nil {
		// ISO strings compare lexicographically as dates.
		return candidate > current
	}
	return a.After(b)
}
