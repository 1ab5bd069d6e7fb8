package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date            time.Time              // Дата, на которую запрашиваются слоты (без времени)
	AppointmentType domain.AppointmentType // Тип приёма
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time              // Дата, на которую запрашивались слоты
	AppointmentType domain.AppointmentType // Тип приёма
	DurationMinutes int                    // Длительность приёма в минутах
	Slots           []Slot                 // Все кандидатные слоты с флагом доступности
	TotalSlots      int                    // Общее количество слотов
	AvailableCount  int                    // Количество доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота (start + длительность приёма)
	Available bool             // Свободен ли слот
}
