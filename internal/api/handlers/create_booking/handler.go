package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ClinicScheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDate          = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime          = "invalid start time format, expected HH:MM"
	msgInvalidType          = "invalid appointment type, expected one of: consultation, followup, physical, specialist"
	msgDateInPast           = "cannot book appointments in the past"
	msgOutsideBusinessHours = "requested slot is outside business hours"
	msgSlotNotAvailable     = "the selected time slot is no longer available"
	msgValidationFailed     = "patient validation failed"
	msgInvalidRequestData   = "invalid request data"
)

var (
	errInvalidDateFormat = errors.New("invalid date format")
	errInvalidTimeFormat = errors.New("invalid time format")
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /book - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Ошибки валидации полей пациента отдаются все вместе со статусом 422
		var validationErrs *createBooking.ValidationErrors
		if errors.As(err, &validationErrs) {
			h.logger.Warn("POST /book - Patient validation failed: %v", validationErrs)
			handlers.RespondValidationErrors(w, msgValidationFailed, toFieldErrors(validationErrs))
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /book - Slot conflict: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidAppointmentType):
			h.logger.Warn("POST /book - Invalid appointment type: %s", req.AppointmentType)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /book - Past date rejected: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /book - Outside business hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("POST /book - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /book - Booking created successfully: booking_id=%s, date=%s, time=%s",
		result.BookingID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, response)
}

func toFieldErrors(errs *createBooking.ValidationErrors) []handlers.FieldError {
	fields := make([]handlers.FieldError, len(errs.Fields))
	for i, f := range errs.Fields {
		fields[i] = handlers.FieldError{Field: f.Field, Message: f.Message}
	}
	return fields
}
