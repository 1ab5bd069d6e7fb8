package get_business_hours

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	Start               string `json:"start"`
	End                 string `json:"end"`
	SlotIntervalMinutes int    `json:"slot_interval_minutes"`
}

type Handler struct {
	openTime     types.TimeString
	closeTime    types.TimeString
	slotInterval int
	logger       Logger
}

func NewHandler(openTime, closeTime types.TimeString, slotInterval int, logger Logger) *Handler {
	return &Handler{
		openTime:     openTime,
		closeTime:    closeTime,
		slotInterval: slotInterval,
		logger:       logger,
	}
}

// Handle GET /business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /business-hours - Returned clinic hours %s-%s", h.openTime, h.closeTime)
	handlers.RespondJSON(w, http.StatusOK, BusinessHoursResponse{
		Start:               h.openTime.String(),
		End:                 h.closeTime.String(),
		SlotIntervalMinutes: h.slotInterval,
	})
}
