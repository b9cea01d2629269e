package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-backend/internal/booking"
	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/usecase"
	"dental-clinic-backend/pkg/response"
	"dental-clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type BookingFlowHandler struct {
	bookingFlowUsecase usecase.BookingFlowUsecase
	validator          *validator.CustomValidator
}

func NewBookingFlowHandler(bookingFlowUsecase usecase.BookingFlowUsecase, validator *validator.CustomValidator) *BookingFlowHandler {
	return &BookingFlowHandler{
		bookingFlowUsecase: bookingFlowUsecase,
		validator:          validator,
	}
}

func (h *BookingFlowHandler) StartFlow(w http.ResponseWriter, r *http.Request) {
	var req dto.StartBookingFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	flow, err := h.bookingFlowUsecase.StartFlow(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrDentistNotFound {
			response.NotFound(w, "Dentist not found")
			return
		}
		response.InternalServerError(w, "Failed to start booking flow")
		return
	}

	response.Success(w, http.StatusCreated, "Booking flow started", flow)
}

func (h *BookingFlowHandler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req dto.SubmitBookingDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	flow, err := h.bookingFlowUsecase.SubmitDetails(r.Context(), flowID, &req)
	if err != nil {
		h.writeFlowError(w, err, "Failed to submit booking details")
		return
	}

	response.Success(w, http.StatusOK, "Booking details submitted", flow)
}

func (h *BookingFlowHandler) Back(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	flow, err := h.bookingFlowUsecase.Back(r.Context(), flowID)
	if err != nil {
		h.writeFlowError(w, err, "Failed to return booking flow to editing")
		return
	}

	response.Success(w, http.StatusOK, "Booking flow returned to editing", flow)
}

func (h *BookingFlowHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]
	userID := actorFromContext(r)

	flow, err := h.bookingFlowUsecase.Confirm(r.Context(), flowID, userID)
	if err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrInvalidPhone:
			response.Error(w, http.StatusBadRequest, "Invalid phone number")
		default:
			h.writeFlowError(w, err, "Failed to confirm booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking confirmed", flow)
}

func (h *BookingFlowHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	if err := h.bookingFlowUsecase.Cancel(r.Context(), flowID); err != nil {
		h.writeFlowError(w, err, "Failed to cancel booking flow")
		return
	}

	response.Success(w, http.StatusOK, "Booking flow cancelled", nil)
}

func (h *BookingFlowHandler) writeFlowError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrFlowNotFound:
		response.NotFound(w, "Booking flow not found")
	case booking.ErrInvalidTransition, booking.ErrFlowFinished:
		response.Error(w, http.StatusConflict, err.Error())
	case booking.ErrDraftInvalid:
		response.Error(w, http.StatusBadRequest, "Booking details are incomplete or invalid")
	default:
		response.InternalServerError(w, fallback)
	}
}
