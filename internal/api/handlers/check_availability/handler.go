package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-ClinicScheduler/internal/usecase/check_availability"
)

const (
	msgMissingDate        = "date query parameter is required"
	msgMissingType        = "appointment_type query parameter is required"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidType        = "invalid appointment type, expected one of: consultation, followup, physical, specialist"
	msgInvalidRequestData = "invalid request data"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /availability
// Query params: date (required, YYYY-MM-DD), appointment_type (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем appointment_type из query параметров
	appointmentType := r.URL.Query().Get("appointment_type")
	if appointmentType == "" {
		h.logger.Warn("GET /availability - Missing appointment type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, appointmentType)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidAppointmentType):
			h.logger.Warn("GET /availability - Invalid appointment type: %s", appointmentType)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("GET /availability - Failed to check availability: date=%s, type=%s, error=%v",
				dateStr, appointmentType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Slots retrieved successfully: date=%s, type=%s, slots_count=%d",
		dateStr, appointmentType, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
