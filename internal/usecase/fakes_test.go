package usecase

import (
	"context"
	"io"

	"dental-clinic-backend/internal/booking"
	"dental-clinic-backend/internal/domain/entity"
	"dental-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testDB is a stub *gorm.DB: the fakes below never touch it, but the
// usecases call WithContext on it.
func testDB() *gorm.DB {
	return &gorm.DB{Config: &gorm.Config{}, Statement: &gorm.Statement{}}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAuditService(repo *fakeAuditLogRepo) *service.AuditService {
	return service.NewAuditService(testDB(), testLogger(), repo)
}

type fakeDentistRepo struct {
	dentists map[uuid.UUID]*entity.Dentist
}

func newFakeDentistRepo(dentists ...*entity.Dentist) *fakeDentistRepo {
	repo := &fakeDentistRepo{dentists: map[uuid.UUID]*entity.Dentist{}}
	for _, d := range dentists {
		repo.dentists[d.ID] = d
	}
	return repo
}

func (f *fakeDentistRepo) Create(db *gorm.DB, dentist *entity.Dentist) error {
	if dentist.ID == uuid.Nil {
		dentist.ID = uuid.New()
	}
	f.dentists[dentist.ID] = dentist
	return nil
}

func (f *fakeDentistRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Dentist, error) {
	return f.dentists[id], nil
}

func (f *fakeDentistRepo) FindAll(db *gorm.DB, specialty string) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	for _, d := range f.dentists {
		if specialty == "" || d.Specialty == specialty {
			dentists = append(dentists, *d)
		}
	}
	return dentists, nil
}

func (f *fakeDentistRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := f.dentists[id]; !ok {
		return 0, nil
	}
	delete(f.dentists, id)
	return 1, nil
}

func (f *fakeDentistRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(f.dentists)), nil
}

type fakeAppointmentStore struct {
	appointments []entity.Appointment
	createErr    error
}

func (f *fakeAppointmentStore) Create(ctx context.Context, appointment *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			apt := f.appointments[i]
			return &apt, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentStore) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return append([]entity.Appointment(nil), f.appointments...), nil
}

func (f *fakeAppointmentStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeAppointmentStore) CountByDentist(ctx context.Context, dentistID uuid.UUID) (int64, error) {
	var count int64
	for i := range f.appointments {
		if f.appointments[i].DentistID == dentistID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.appointments)), nil
}

type fakeAuditLogRepo struct {
	actions []string
}

func (f *fakeAuditLogRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	f.actions = append(f.actions, log.Action)
	return nil
}

func (f *fakeAuditLogRepo) FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	return nil, nil
}

// fakeFlowStore saves copies, so persisted state is only what went through
// Save.
type fakeFlowStore struct {
	flows map[string]*booking.Flow
}

func newFakeFlowStore(flows ...*booking.Flow) *fakeFlowStore {
	store := &fakeFlowStore{flows: map[string]*booking.Flow{}}
	for _, flow := range flows {
		store.flows[flow.ID] = copyFlow(flow)
	}
	return store
}

func copyFlow(flow *booking.Flow) *booking.Flow {
	c := *flow
	return &c
}

func (f *fakeFlowStore) Save(ctx context.Context, flow *booking.Flow) error {
	f.flows[flow.ID] = copyFlow(flow)
	return nil
}

func (f *fakeFlowStore) Find(ctx context.Context, id string) (*booking.Flow, error) {
	flow, ok := f.flows[id]
	if !ok {
		return nil, nil
	}
	return copyFlow(flow), nil
}

func (f *fakeFlowStore) Discard(ctx context.Context, id string) error {
	delete(f.flows, id)
	return nil
}
