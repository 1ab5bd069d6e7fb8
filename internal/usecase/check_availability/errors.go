package check_availability

import "errors"

var (
	// ErrInvalidAppointmentType возвращается при неизвестном типе приёма
	ErrInvalidAppointmentType = errors.New("check_availability: invalid appointment type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
