package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	checkAvailability "github.com/m04kA/SMC-ClinicScheduler/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date            string     `json:"date"`
	AppointmentType string     `json:"appointment_type"`
	DurationMinutes int        `json:"duration_minutes"`
	AvailableSlots  []TimeSlot `json:"available_slots"`
	TotalSlots      int        `json:"total_slots"`
	AvailableCount  int        `json:"available_count"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, appointmentType string) (*checkAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date:            date,
		AppointmentType: domain.AppointmentType(appointmentType),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		AppointmentType: string(resp.AppointmentType),
		DurationMinutes: resp.DurationMinutes,
		AvailableSlots:  slots,
		TotalSlots:      resp.TotalSlots,
		AvailableCount:  resp.AvailableCount,
	}
}
