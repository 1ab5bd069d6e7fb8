package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

var (
	// emailPattern упрощённая проверка формата email: непустая локальная часть,
	// @, домен с точкой. Полная проверка RFC 5322 здесь не нужна.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// phonePattern цифры и типовые разделители телефонного номера
	phonePattern = regexp.MustCompile(`^[0-9+\-().\s]+$`)
)

// validateRequest валидирует структурные поля запроса
func validateRequest(req *Request) error {
	if req.AppointmentType == "" {
		return fmt.Errorf("%w: appointment type is required", ErrInvalidInput)
	}

	if !domain.IsValidAppointmentType(req.AppointmentType) {
		return fmt.Errorf("%w: %q", ErrInvalidAppointmentType, req.AppointmentType)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validatePatient проверяет поля пациента и собирает ВСЕ ошибки валидации,
// а не останавливается на первой
func validatePatient(p PatientInput) *ValidationErrors {
	errs := &ValidationErrors{}

	if strings.TrimSpace(p.Name) == "" {
		errs.Add("name", "patient name is required")
	} else if len(p.Name) > domain.MaxPatientNameLength {
		errs.Add("name", fmt.Sprintf("patient name must not exceed %d characters", domain.MaxPatientNameLength))
	}

	if !emailPattern.MatchString(p.Email) {
		errs.Add("email", "invalid email format")
	}

	phone := strings.TrimSpace(p.Phone)
	switch {
	case len(phone) < domain.MinPhoneLength:
		errs.Add("phone", fmt.Sprintf("phone number must be at least %d characters", domain.MinPhoneLength))
	case len(phone) > domain.MaxPhoneLength:
		errs.Add("phone", fmt.Sprintf("phone number must not exceed %d characters", domain.MaxPhoneLength))
	case !phonePattern.MatchString(phone):
		errs.Add("phone", "phone number may contain only digits and separators")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateReason проверяет опциональную причину визита
func validateReason(reason *string) *ValidationErrors {
	if reason == nil {
		return nil
	}
	if len(*reason) > domain.MaxReasonLength {
		errs := &ValidationErrors{}
		errs.Add("reason", fmt.Sprintf("reason must not exceed %d characters", domain.MaxReasonLength))
		return errs
	}
	return nil
}

// validateNotInPast проверяет, что дата и время начала не в прошлом
func validateNotInPast(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrDateInPast
	}

	// Для сегодняшней даты время начала не должно быть раньше текущего
	if isSameDay(date, now) && startTime.IsBefore(types.NewTimeString(now)) {
		return ErrDateInPast
	}

	return nil
}

// validateBusinessHours проверяет, что окно бронирования целиком помещается
// в рабочие часы клиники
func validateBusinessHours(startTime, endTime types.TimeString, schedule Schedule) error {
	if startTime.IsBefore(schedule.OpenTime) {
		return fmt.Errorf("%w: starts before opening at %s", ErrOutsideBusinessHours, schedule.OpenTime)
	}
	if endTime.IsAfter(schedule.CloseTime) {
		return fmt.Errorf("%w: ends after closing at %s", ErrOutsideBusinessHours, schedule.CloseTime)
	}
	return nil
}

// countOverlappingBookings подсчитывает количество бронирований, пересекающихся
// с окном [startTime, endTime). Используются строгие неравенства: бронирования,
// граничащие с окном, пересечением не считаются.
func countOverlappingBookings(startTime, endTime types.TimeString, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.Overlaps(startTime, endTime) {
			count++
		}
	}
	return count
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
