package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/delivery/http/middleware"
	"dental-clinic-backend/internal/usecase"
	"dental-clinic-backend/pkg/response"
	"dental-clinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DentistHandler struct {
	dentistUsecase usecase.DentistUsecase
	validator      *validator.CustomValidator
}

func NewDentistHandler(dentistUsecase usecase.DentistUsecase, validator *validator.CustomValidator) *DentistHandler {
	return &DentistHandler{
		dentistUsecase: dentistUsecase,
		validator:      validator,
	}
}

func (h *DentistHandler) CreateDentist(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDentistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID := actorFromContext(r)
	dentist, err := h.dentistUsecase.CreateDentist(r.Context(), &req, actorID)
	if err != nil {
		switch err {
		case usecase.ErrInvalidSlots:
			response.Error(w, http.StatusBadRequest, "Available slots must map weekday names or YYYY-MM-DD dates to HH:MM times")
		default:
			response.InternalServerError(w, "Failed to create dentist")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Dentist created successfully", dentist)
}

func (h *DentistHandler) GetDentist(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	dentist, err := h.dentistUsecase.GetDentist(r.Context(), id)
	if err != nil {
		if err == usecase.ErrDentistNotFound {
			response.NotFound(w, "Dentist not found")
			return
		}
		response.InternalServerError(w, "Failed to get dentist")
		return
	}

	response.Success(w, http.StatusOK, "Dentist retrieved successfully", dentist)
}

func (h *DentistHandler) GetAllDentists(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	dentists, err := h.dentistUsecase.GetAllDentists(r.Context(), specialty)
	if err != nil {
		response.InternalServerError(w, "Failed to get dentists")
		return
	}

	response.Success(w, http.StatusOK, "Dentists retrieved successfully", dentists)
}

func (h *DentistHandler) DeleteDentist(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	actorID := actorFromContext(r)
	if err := h.dentistUsecase.DeleteDentist(r.Context(), id, actorID); err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrDentistInUse:
			response.Conflict(w, "Cannot delete dentist with existing appointments")
		default:
			response.InternalServerError(w, "Failed to delete dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist deleted successfully", nil)
}

func (h *DentistHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	query := r.URL.Query()
	slots, err := h.dentistUsecase.GetAvailableSlots(r.Context(), id, query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *DentistHandler) GetNextAvailable(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	next, err := h.dentistUsecase.GetNextAvailable(r.Context(), id)
	if err != nil {
		if err == usecase.ErrDentistNotFound {
			response.NotFound(w, "Dentist not found")
			return
		}
		response.InternalServerError(w, "Failed to get next available slot")
		return
	}

	response.Success(w, http.StatusOK, "Next available slot retrieved successfully", next)
}

// parseIDVar pulls a UUID path variable, replying 400 on malformed input.
func parseIDVar(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// actorFromContext returns the authenticated user's ID, nil for guests.
func actorFromContext(r *http.Request) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return &userID
	}
	return nil
}
