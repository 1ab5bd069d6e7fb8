package get_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	bookingsService "github.com/m04kA/SMC-ClinicScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-ClinicScheduler/internal/service/bookings/models"
)

const (
	msgMissingBookingID = "booking id is required"
	msgBookingNotFound  = "booking not found"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID        string       `json:"booking_id"`
	Status           string       `json:"status"`
	ConfirmationCode string       `json:"confirmation_code"`
	AppointmentType  string       `json:"appointment_type"`
	Date             string       `json:"date"`
	StartTime        string       `json:"start_time"`
	EndTime          string       `json:"end_time"`
	DurationMinutes  int          `json:"duration_minutes"`
	Patient          PatientInfo  `json:"patient"`
	Reason           *string      `json:"reason,omitempty"`
	CreatedAt        string       `json:"created_at"`
}

// PatientInfo данные пациента
type PatientInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("GET /bookings/{id} - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		BookingID:        resp.BookingID,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		AppointmentType:  string(resp.AppointmentType),
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Patient: PatientInfo{
			Name:  resp.Patient.Name,
			Email: resp.Patient.Email,
			Phone: resp.Patient.Phone,
		},
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
