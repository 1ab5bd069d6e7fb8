package get_appointment_types

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// AppointmentTypesResponse HTTP response model
type AppointmentTypesResponse struct {
	Types []AppointmentType `json:"types"`
}

// AppointmentType описание типа приёма
type AppointmentType struct {
	Key             string `json:"key"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"duration_minutes"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /appointment-types
// Справочник статичен, поэтому handler не ходит ни в usecase, ни в хранилище.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	types := make([]AppointmentType, 0, len(domain.AppointmentTypes))
	for _, key := range domain.AppointmentTypeKeys() {
		info := domain.AppointmentTypes[key]
		types = append(types, AppointmentType{
			Key:             string(key),
			Label:           info.Label,
			DurationMinutes: info.DurationMinutes,
		})
	}

	h.logger.Info("GET /appointment-types - Returned %d types", len(types))
	handlers.RespondJSON(w, http.StatusOK, AppointmentTypesResponse{Types: types})
}
