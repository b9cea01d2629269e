package http

import (
	"net/http"

	"dental-clinic-backend/internal/delivery/http/handler"
	"dental-clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	dentistHandler     *handler.DentistHandler
	appointmentHandler *handler.AppointmentHandler
	bookingFlowHandler *handler.BookingFlowHandler
	patientHandler     *handler.PatientHandler
	userHandler        *handler.UserHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	dentistHandler *handler.DentistHandler,
	appointmentHandler *handler.AppointmentHandler,
	bookingFlowHandler *handler.BookingFlowHandler,
	patientHandler *handler.PatientHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		dentistHandler:     dentistHandler,
		appointmentHandler: appointmentHandler,
		bookingFlowHandler: bookingFlowHandler,
		patientHandler:     patientHandler,
		userHandler:        userHandler,
		adminHandler:       adminHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Dentist browsing (public)
	api.HandleFunc("/dentists", r.dentistHandler.GetAllDentists).Methods(http.MethodGet)
	api.HandleFunc("/dentists/{id}", r.dentistHandler.GetDentist).Methods(http.MethodGet)
	api.HandleFunc("/dentists/{id}/available-slots", r.dentistHandler.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/dentists/{id}/next-available", r.dentistHandler.GetNextAvailable).Methods(http.MethodGet)

	// Booking (public, with optional identity so logged-in users get linked)
	booking := api.NewRoute().Subrouter()
	booking.Use(r.authMiddleware.OptionalAuthenticate)
	booking.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	booking.HandleFunc("/booking-flows", r.bookingFlowHandler.StartFlow).Methods(http.MethodPost)
	booking.HandleFunc("/booking-flows/{flowId}", r.bookingFlowHandler.SubmitDetails).Methods(http.MethodPut)
	booking.HandleFunc("/booking-flows/{flowId}/back", r.bookingFlowHandler.Back).Methods(http.MethodPost)
	booking.HandleFunc("/booking-flows/{flowId}/confirm", r.bookingFlowHandler.Confirm).Methods(http.MethodPost)
	booking.HandleFunc("/booking-flows/{flowId}", r.bookingFlowHandler.Cancel).Methods(http.MethodDelete)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// User profile (protected)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.HandleFunc("/{userId}", r.userHandler.GetUser).Methods(http.MethodGet)
	users.HandleFunc("/{userId}", r.userHandler.UpdateUser).Methods(http.MethodPatch)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Dentist management (admin)
	admin.HandleFunc("/dentists", r.dentistHandler.CreateDentist).Methods(http.MethodPost)
	admin.HandleFunc("/dentists/{id}", r.dentistHandler.DeleteDentist).Methods(http.MethodDelete)

	// Appointment management (admin)
	admin.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Patient roster and dashboard (admin)
	admin.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/stats", r.adminHandler.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.adminHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
