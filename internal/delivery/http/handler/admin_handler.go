package handler

import (
	"net/http"

	"dental-clinic-backend/internal/usecase"
	"dental-clinic-backend/pkg/response"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get admin stats")
		return
	}

	response.Success(w, http.StatusOK, "Stats retrieved successfully", stats)
}

func (h *AdminHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.adminUsecase.GetAuditLogs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
