package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicScheduler/pkg/ptr"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

func validPatient() PatientInput {
	return PatientInput{
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
		Phone: "+1 (555) 123-4567",
	}
}

func fieldMessages(errs *ValidationErrors) map[string]string {
	m := make(map[string]string)
	for _, f := range errs.Fields {
		m[f.Field] = f.Message
	}
	return m
}

func TestValidatePatient_Valid(t *testing.T) {
	assert.Nil(t, validatePatient(validPatient()))
}

func TestValidatePatient_InvalidEmail(t *testing.T) {
	tests := []string{
		"not-an-email",
		"missing-at.example.com",
		"no-domain@",
		"@no-local.example.com",
		"no-dot@example",
		"spaces in@example.com",
		"",
	}

	for _, email := range tests {
		t.Run(email, func(t *testing.T) {
			p := validPatient()
			p.Email = email

			errs := validatePatient(p)
			require.NotNil(t, errs)
			assert.Contains(t, fieldMessages(errs), "email")
		})
	}
}

func TestValidatePatient_InvalidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
	}{
		{"too short", "12345"},
		{"empty", ""},
		{"too long", strings.Repeat("5", 21)},
		{"letters", "555-CALL-NOW-12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			p.Phone = tt.phone

			errs := validatePatient(p)
			require.NotNil(t, errs)
			assert.Contains(t, fieldMessages(errs), "phone")
		})
	}
}

func TestValidatePatient_InvalidName(t *testing.T) {
	tests := []struct {
		name        string
		patientName string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too long", strings.Repeat("a", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatient()
			p.Name = tt.patientName

			errs := validatePatient(p)
			require.NotNil(t, errs)
			assert.Contains(t, fieldMessages(errs), "name")
		})
	}
}

func TestValidatePatient_CollectsAllErrors(t *testing.T) {
	// Все ошибки формы собираются за один проход, а не до первой
	errs := validatePatient(PatientInput{
		Name:  "",
		Email: "bad-email",
		Phone: "123",
	})
	require.NotNil(t, errs)
	require.Len(t, errs.Fields, 3)

	m := fieldMessages(errs)
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "email")
	assert.Contains(t, m, "phone")
}

func TestValidateReason(t *testing.T) {
	assert.Nil(t, validateReason(nil))
	assert.Nil(t, validateReason(ptr.Ptr("annual checkup")))

	errs := validateReason(ptr.Ptr(strings.Repeat("x", 501)))
	require.NotNil(t, errs)
	assert.Contains(t, fieldMessages(errs), "reason")
}

func TestValidateNotInPast(t *testing.T) {
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		startTime types.TimeString
		wantErr   error
	}{
		{
			name:      "future date",
			date:      time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC),
			startTime: "09:00",
		},
		{
			name:      "past date",
			date:      time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC),
			startTime: "09:00",
			wantErr:   ErrDateInPast,
		},
		{
			name:      "today later time",
			date:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			startTime: "14:00",
		},
		{
			name:      "today earlier time",
			date:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			startTime: "09:00",
			wantErr:   ErrDateInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNotInPast(tt.date, tt.startTime, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBusinessHours(t *testing.T) {
	schedule := Schedule{OpenTime: "09:00", CloseTime: "17:00", SlotIntervalMinutes: 15}

	tests := []struct {
		name    string
		start   types.TimeString
		end     types.TimeString
		wantErr bool
	}{
		{"inside hours", "10:00", "10:30", false},
		{"exactly opening", "09:00", "09:30", false},
		{"ends exactly at closing", "16:30", "17:00", false},
		{"before opening", "08:00", "08:30", true},
		{"ends after closing", "16:45", "17:15", true},
		{"after closing", "18:00", "18:30", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBusinessHours(tt.start, tt.end, schedule)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutsideBusinessHours)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
