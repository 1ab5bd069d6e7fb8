package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAppointmentType возвращается при неизвестном типе приёма
	ErrInvalidAppointmentType = errors.New("create_booking: invalid appointment type")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату или время
	ErrDateInPast = errors.New("create_booking: cannot book appointments in the past")

	// ErrOutsideBusinessHours возвращается, когда запрошенное окно не помещается
	// в рабочие часы клиники
	ErrOutsideBusinessHours = errors.New("create_booking: slot is outside business hours")

	// ErrSlotNotAvailable возвращается, когда выбранный слот пересекается
	// с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldError ошибка валидации конкретного поля запроса
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors набор ошибок валидации полей пациента.
// Собирается целиком, а не до первой ошибки, чтобы клиент мог показать
// все проблемы формы за один раз.
type ValidationErrors struct {
	Fields []FieldError
}

// Add добавляет ошибку поля
func (e *ValidationErrors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors возвращает true, если есть хотя бы одна ошибка
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error реализует интерфейс error
func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "create_booking: validation failed: " + strings.Join(parts, "; ")
}
