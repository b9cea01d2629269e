package booking

import (
	"errors"

	"dental-clinic-backend/pkg/validator"

	"github.com/google/uuid"
)

// State is the explicit booking flow state. A flow moves Form → Review →
// Confirmed, with Review → Form as the only back-transition. Confirmed is
// terminal.
type State string

const (
	StateForm      State = "form"
	StateReview    State = "review"
	StateConfirmed State = "confirmed"
)

var (
	ErrInvalidTransition = errors.New("invalid booking flow transition")
	ErrDraftInvalid      = errors.New("booking draft failed validation")
	ErrFlowFinished      = errors.New("booking flow already confirmed")
)

// Draft holds the in-progress form input. Nothing is persisted to the
// appointment store until Confirm succeeds.
type Draft struct {
	PatientName string `json:"patient_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
}

// Flow is one guest booking session for a single dentist.
type Flow struct {
	ID        string    `json:"id"`
	DentistID uuid.UUID `json:"dentist_id"`
	State     State     `json:"state"`
	Draft     Draft     `json:"draft"`
}

// NewFlow starts a flow in the Form state.
func NewFlow(dentistID uuid.UUID) *Flow {
	return &Flow{
		ID:        uuid.New().String(),
		DentistID: dentistID,
		State:     StateForm,
	}
}

// SetDate records a date selection. Choosing a new date clears any
// previously selected time, since time choices depend on the date.
func (f *Flow) SetDate(date string) {
	if f.Draft.Date != date {
		f.Draft.Time = ""
	}
	f.Draft.Date = date
}

// Submit merges the input into the draft and advances Form → Review when it
// validates. The date goes through SetDate first, so changing the date drops
// a time chosen for the old one; an omitted time keeps the stored choice.
// The draft is kept on failure so the form can surface inline errors without
// losing input.
func (f *Flow) Submit(draft Draft, validate func(Draft) error) error {
	switch f.State {
	case StateConfirmed:
		return ErrFlowFinished
	case StateReview:
		return ErrInvalidTransition
	}

	f.SetDate(draft.Date)
	f.Draft.PatientName = draft.PatientName
	f.Draft.Phone = draft.Phone
	f.Draft.Email = draft.Email
	f.Draft.Notes = draft.Notes
	if draft.Time != "" {
		f.Draft.Time = draft.Time
	}

	if err := validate(f.Draft); err != nil {
		return err
	}
	f.State = StateReview
	return nil
}

// Back returns from Review to Form, keeping the draft for editing.
func (f *Flow) Back() error {
	if f.State != StateReview {
		return ErrInvalidTransition
	}
	f.State = StateForm
	return nil
}

// Confirm invokes create with the reviewed draft. On failure the flow stays
// in Review with no state corruption; on success it terminates in Confirmed.
func (f *Flow) Confirm(create func(Draft) error) error {
	switch f.State {
	case StateConfirmed:
		return ErrFlowFinished
	case StateForm:
		return ErrInvalidTransition
	}

	if err := create(f.Draft); err != nil {
		return err
	}
	f.State = StateConfirmed
	return nil
}

// ValidateDraft applies the booking form rules: required name, loose
// international phone, optional well-formed email, and a selected date and
// time. Same rules the appointment store enforces, applied first.
func ValidateDraft(d Draft) error {
	if d.PatientName == "" {
		return ErrDraftInvalid
	}
	if !validator.IsValidPhone(d.Phone) {
		return ErrDraftInvalid
	}
	if d.Email != "" && !validator.IsValidEmail(d.Email) {
		return ErrDraftInvalid
	}
	if d.Date == "" || d.Time == "" {
		return ErrDraftInvalid
	}
	return nil
}
