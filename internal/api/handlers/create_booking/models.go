package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	createBooking "github.com/m04kA/SMC-ClinicScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AppointmentType string       `json:"appointment_type"`
	Date            string       `json:"date"`       // "2025-11-21"
	StartTime       string       `json:"start_time"` // "10:00"
	Patient         PatientInput `json:"patient"`
	Reason          *string      `json:"reason,omitempty"`
}

// PatientInput данные пациента из запроса
type PatientInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID        string         `json:"booking_id"`
	Status           string         `json:"status"`
	ConfirmationCode string         `json:"confirmation_code"`
	Details          BookingDetails `json:"details"`
}

// BookingDetails детали подтверждённого бронирования
type BookingDetails struct {
	Patient         PatientInput `json:"patient"`
	AppointmentType string       `json:"appointment_type"`
	Date            string       `json:"date"`
	StartTime       string       `json:"start_time"`
	EndTime         string       `json:"end_time"`
	DurationMinutes int          `json:"duration_minutes"`
	Reason          *string      `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Ошибки парсинга даты и времени различаются, чтобы handler вернул
// точное сообщение.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDateFormat
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTimeFormat
	}

	return &createBooking.Request{
		AppointmentType: domain.AppointmentType(r.AppointmentType),
		Date:            date,
		StartTime:       startTime,
		Patient: createBooking.PatientInput{
			Name:  r.Patient.Name,
			Email: r.Patient.Email,
			Phone: r.Patient.Phone,
		},
		Reason: r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:        resp.BookingID,
		Status:           resp.Status,
		ConfirmationCode: resp.ConfirmationCode,
		Details: BookingDetails{
			Patient: PatientInput{
				Name:  resp.Patient.Name,
				Email: resp.Patient.Email,
				Phone: resp.Patient.Phone,
			},
			AppointmentType: string(resp.AppointmentType),
			Date:            resp.Date.Format(domain.DateFormat),
			StartTime:       resp.StartTime.String(),
			EndTime:         resp.EndTime.String(),
			DurationMinutes: resp.DurationMinutes,
			Reason:          resp.Reason,
		},
	}
}
