package domain

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusConfirmed is the only status a booking can have: bookings are
	// created confirmed and are immutable afterwards (no reschedule/cancel).
	StatusConfirmed BookingStatus = "confirmed"
)

// AppointmentType is the key of a clinic appointment type
type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeFollowup     AppointmentType = "followup"
	TypePhysical     AppointmentType = "physical"
	TypeSpecialist   AppointmentType = "specialist"
)

// AppointmentTypeInfo describes a bookable appointment type
type AppointmentTypeInfo struct {
	Label           string
	DurationMinutes int
}

// AppointmentTypes is the static lookup table of bookable appointment types.
// The table is fixed: there is no admin surface for editing it.
var AppointmentTypes = map[AppointmentType]AppointmentTypeInfo{
	TypeConsultation: {Label: "General Consultation", DurationMinutes: 30},
	TypeFollowup:     {Label: "Follow-up Visit", DurationMinutes: 15},
	TypePhysical:     {Label: "Physical Examination", DurationMinutes: 45},
	TypeSpecialist:   {Label: "Specialist Consultation", DurationMinutes: 60},
}

// AppointmentTypeKeys returns the type keys in a stable order
func AppointmentTypeKeys() []AppointmentType {
	return []AppointmentType{TypeConsultation, TypeFollowup, TypePhysical, TypeSpecialist}
}

// IsValidAppointmentType reports whether key is a known appointment type
func IsValidAppointmentType(key AppointmentType) bool {
	_, ok := AppointmentTypes[key]
	return ok
}

// AppointmentTypeDuration returns the duration of the given appointment type in minutes
func AppointmentTypeDuration(key AppointmentType) (int, bool) {
	info, ok := AppointmentTypes[key]
	if !ok {
		return 0, false
	}
	return info.DurationMinutes, true
}

// Patient holds patient contact details embedded in a booking.
// Patients have no identity of their own: two bookings with the same
// email are unrelated records.
type Patient struct {
	Name  string
	Email string
	Phone string
}

// Booking represents a confirmed clinic appointment
type Booking struct {
	ID               string
	ConfirmationCode string
	AppointmentType  AppointmentType
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	DurationMinutes  int
	Patient          Patient
	Reason           *string
	Status           BookingStatus

	CreatedAt time.Time
}

// Overlaps reports whether the booking overlaps the [start, end) window.
// Strict inequalities: windows that merely touch do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}
