package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.AppointmentType == "" {
		return fmt.Errorf("%w: appointment type is required", ErrInvalidInput)
	}

	if !domain.IsValidAppointmentType(req.AppointmentType) {
		return fmt.Errorf("%w: %q", ErrInvalidAppointmentType, req.AppointmentType)
	}

	return nil
}
