package domain

// Default clinic schedule values, used when the config does not override them
const (
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "17:00"
	DefaultSlotIntervalMinutes = 15
)

// Patient validation constants
const (
	MaxPatientNameLength = 100
	MinPhoneLength       = 10
	MaxPhoneLength       = 20
	MaxReasonLength      = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
