package domain

import "github.com/m04kA/SMC-ClinicScheduler/pkg/types"

// TimeSlot represents a candidate booking window within business hours.
// Derived on every availability request, never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}
