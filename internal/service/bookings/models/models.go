package models

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// BookingResponse модель бронирования для чтения
type BookingResponse struct {
	BookingID        string
	Status           string
	ConfirmationCode string
	AppointmentType  domain.AppointmentType
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	DurationMinutes  int
	Patient          domain.Patient
	Reason           *string
	CreatedAt        time.Time
}

// FromDomainBooking конвертирует domain.Booking в модель чтения
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		BookingID:        b.ID,
		Status:           string(b.Status),
		ConfirmationCode: b.ConfirmationCode,
		AppointmentType:  b.AppointmentType,
		Date:             b.Date,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		DurationMinutes:  b.DurationMinutes,
		Patient:          b.Patient,
		Reason:           b.Reason,
		CreatedAt:        b.CreatedAt,
	}
}
