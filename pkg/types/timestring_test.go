package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning time", input: "09:00", want: "09:00"},
		{name: "valid afternoon time", input: "16:45", want: "16:45"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "normalizes missing leading zero", input: "9:00", want: "09:00"},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:61", wantErr: true},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())

	// Ненормализованные значения отклоняются, иначе лексикографические
	// сравнения дают "9:00" > "09:30"
	assert.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("25:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("garbage").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "09:00", minutes: 30, want: "09:30"},
		{name: "across hour", start: "09:45", minutes: 30, want: "10:15"},
		{name: "zero minutes", start: "12:00", minutes: 0, want: "12:00"},
		{name: "to end of day", start: "23:00", minutes: 59, want: "23:59"},
		{name: "overflow past midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "negative below midnight", start: "00:10", minutes: -30, wantErr: true},
		{name: "invalid receiver", start: "garbage", minutes: 15, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:15"))
	assert.False(t, TimeString("09:15").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("16:45"))
	assert.False(t, TimeString("17:00").IsAfter("17:00"))

	// Сравнение строк HH:MM совпадает с хронологическим порядком
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 11, 21, 14, 7, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:07"), ts)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:45"), ts)

	require.Error(t, ts.Scan(42))
}
