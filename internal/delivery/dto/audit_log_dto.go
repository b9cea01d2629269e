package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	UserEmail string                 `json:"user_email,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}

// AdminStatsResponse carries the dashboard aggregate counts.
type AdminStatsResponse struct {
	Dentists          int64 `json:"dentists"`
	Appointments      int64 `json:"appointments"`
	Patients          int   `json:"patients"`
	AppointmentsToday int64 `json:"appointments_today"`
}
