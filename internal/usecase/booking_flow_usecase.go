package usecase

import (
	"context"
	"errors"

	"dental-clinic-backend/internal/booking"
	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/domain/entity"
	"dental-clinic-backend/internal/domain/repository"
	"dental-clinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrFlowNotFound = errors.New("booking flow not found")

type BookingFlowUsecase interface {
	StartFlow(ctx context.Context, req *dto.StartBookingFlowRequest) (*dto.BookingFlowResponse, error)
	SubmitDetails(ctx context.Context, flowID string, req *dto.SubmitBookingDetailsRequest) (*dto.BookingFlowResponse, error)
	Back(ctx context.Context, flowID string) (*dto.BookingFlowResponse, error)
	Confirm(ctx context.Context, flowID string, userID *uuid.UUID) (*dto.BookingFlowResponse, error)
	Cancel(ctx context.Context, flowID string) error
}

type bookingFlowUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	sessions           booking.FlowStore
	dentistRepo        repository.DentistRepository
	appointmentUsecase AppointmentUsecase
	auditService       *service.AuditService
}

func NewBookingFlowUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessions booking.FlowStore,
	dentistRepo repository.DentistRepository,
	appointmentUsecase AppointmentUsecase,
	auditService *service.AuditService,
) BookingFlowUsecase {
	return &bookingFlowUsecase{
		db:                 db,
		log:                log,
		sessions:           sessions,
		dentistRepo:        dentistRepo,
		appointmentUsecase: appointmentUsecase,
		auditService:       auditService,
	}
}

// StartFlow opens a Form-state session for the given dentist.
func (u *bookingFlowUsecase) StartFlow(ctx context.Context, req *dto.StartBookingFlowRequest) (*dto.BookingFlowResponse, error) {
	dentist, err := u.dentistRepo.FindByID(u.db.WithContext(ctx), req.DentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %s: %+v", req.DentistID, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	flow := booking.NewFlow(dentist.ID)
	if err := u.sessions.Save(ctx, flow); err != nil {
		u.log.Warnf("Failed to save booking flow: %+v", err)
		return nil, err
	}

	return flowToResponse(flow, dentist.Name, nil), nil
}

// SubmitDetails validates the form input and advances the flow to Review.
func (u *bookingFlowUsecase) SubmitDetails(ctx context.Context, flowID string, req *dto.SubmitBookingDetailsRequest) (*dto.BookingFlowResponse, error) {
	flow, err := u.findFlow(ctx, flowID)
	if err != nil {
		return nil, err
	}

	draft := booking.Draft{
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Email:       req.Email,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	}

	if err := flow.Submit(draft, booking.ValidateDraft); err != nil {
		// An invalid submission still merged into the draft; persist it so
		// the kept input survives the round trip.
		if errors.Is(err, booking.ErrDraftInvalid) {
			if saveErr := u.sessions.Save(ctx, flow); saveErr != nil {
				u.log.Warnf("Failed to save booking flow draft: %+v", saveErr)
			}
		}
		return nil, err
	}
	if err := u.sessions.Save(ctx, flow); err != nil {
		u.log.Warnf("Failed to save booking flow: %+v", err)
		return nil, err
	}

	return flowToResponse(flow, "", nil), nil
}

// Back returns a reviewed flow to the Form state for editing.
func (u *bookingFlowUsecase) Back(ctx context.Context, flowID string) (*dto.BookingFlowResponse, error) {
	flow, err := u.findFlow(ctx, flowID)
	if err != nil {
		return nil, err
	}

	if err := flow.Back(); err != nil {
		return nil, err
	}
	if err := u.sessions.Save(ctx, flow); err != nil {
		u.log.Warnf("Failed to save booking flow: %+v", err)
		return nil, err
	}

	return flowToResponse(flow, "", nil), nil
}

// Confirm creates the appointment. On creation failure the flow stays in
// Review and the error is surfaced; on success the session is discarded.
func (u *bookingFlowUsecase) Confirm(ctx context.Context, flowID string, userID *uuid.UUID) (*dto.BookingFlowResponse, error) {
	flow, err := u.findFlow(ctx, flowID)
	if err != nil {
		return nil, err
	}

	var created *dto.AppointmentResponse
	err = flow.Confirm(func(draft booking.Draft) error {
		resp, createErr := u.appointmentUsecase.CreateAppointment(ctx, &dto.CreateAppointmentRequest{
			DentistID:   flow.DentistID,
			PatientName: draft.PatientName,
			Phone:       draft.Phone,
			Email:       draft.Email,
			Date:        draft.Date,
			Time:        draft.Time,
			Notes:       draft.Notes,
		}, userID)
		if createErr != nil {
			return createErr
		}
		created = resp
		return nil
	})
	if err != nil {
		// Keep the Review-state session so the client may retry.
		if saveErr := u.sessions.Save(ctx, flow); saveErr != nil {
			u.log.Warnf("Failed to save booking flow after error: %+v", saveErr)
		}
		return nil, err
	}

	if err := u.sessions.Discard(ctx, flowID); err != nil {
		u.log.Warnf("Failed to discard confirmed booking flow %s: %+v", flowID, err)
	}

	u.auditService.Record(ctx, userID, entity.AuditActionBookingConfirm, map[string]interface{}{
		"flow_id":        flowID,
		"appointment_id": created.ID.String(),
	})
	return flowToResponse(flow, created.DentistName, created), nil
}

// Cancel discards all in-progress input at any state.
func (u *bookingFlowUsecase) Cancel(ctx context.Context, flowID string) error {
	flow, err := u.findFlow(ctx, flowID)
	if err != nil {
		return err
	}
	return u.sessions.Discard(ctx, flow.ID)
}

func (u *bookingFlowUsecase) findFlow(ctx context.Context, flowID string) (*booking.Flow, error) {
	flow, err := u.sessions.Find(ctx, flowID)
	if err != nil {
		u.log.Warnf("Failed to find booking flow %s: %+v", flowID, err)
		return nil, err
	}
	if flow == nil {
		return nil, ErrFlowNotFound
	}
	return flow, nil
}

func flowToResponse(flow *booking.Flow, dentistName string, appointment *dto.AppointmentResponse) *dto.BookingFlowResponse {
	resp := &dto.BookingFlowResponse{
		ID:          flow.ID,
		State:       string(flow.State),
		DentistID:   flow.DentistID,
		DentistName: dentistName,
		Appointment: appointment,
	}
	if flow.State != booking.StateConfirmed {
		resp.Draft = &dto.BookingDraftDTO{
			PatientName: flow.Draft.PatientName,
			Phone:       flow.Draft.Phone,
			Email:       flow.Draft.Email,
			Date:        flow.Draft.Date,
			Time:        flow.Draft.Time,
			Notes:       flow.Draft.Notes,
		}
	}
	return resp
}
