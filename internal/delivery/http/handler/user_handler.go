package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-backend/internal/delivery/dto"
	"dental-clinic-backend/internal/usecase"
	"dental-clinic-backend/pkg/response"
	"dental-clinic-backend/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), id)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get user")
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "userId")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrNoUpdateFields:
			response.Error(w, http.StatusBadRequest, "No fields to update")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email already exists")
		default:
			response.InternalServerError(w, "Failed to update user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}
