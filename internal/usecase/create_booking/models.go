package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	AppointmentType domain.AppointmentType // Тип приёма
	Date            time.Time              // Дата бронирования (без времени)
	StartTime       types.TimeString       // Время начала (например, "10:00")
	Patient         PatientInput           // Данные пациента
	Reason          *string                // Причина визита (опционально)
}

// PatientInput данные пациента из запроса
type PatientInput struct {
	Name  string
	Email string
	Phone string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID        string                 // Идентификатор бронирования
	Status           string                 // Статус ("confirmed")
	ConfirmationCode string                 // Код подтверждения для пациента
	AppointmentType  domain.AppointmentType // Тип приёма
	Date             time.Time              // Дата приёма
	StartTime        types.TimeString       // Время начала
	EndTime          types.TimeString       // Время конца
	DurationMinutes  int                    // Длительность в минутах
	Patient          PatientInput           // Данные пациента
	Reason           *string                // Причина визита
	CreatedAt        time.Time              // Время создания
}
