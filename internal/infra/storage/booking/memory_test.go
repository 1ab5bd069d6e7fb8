package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

func newBooking(id string, date time.Time, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		ConfirmationCode: "ABC123",
		AppointmentType:  domain.TypeConsultation,
		Date:             date,
		StartTime:        types.TimeString(start),
		EndTime:          types.TimeString(end),
		DurationMinutes:  30,
		Patient: domain.Patient{
			Name:  "Jane Doe",
			Email: "jane.doe@example.com",
			Phone: "+1 (555) 123-4567",
		},
		Status: domain.StatusConfirmed,
	}
}

func TestMemoryRepository_CreateAndGetByID(t *testing.T) {
	repo := NewMemoryRepository()
	date := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(context.Background(), newBooking("APPT-20251120-AAAA1111", date, "10:00", "10:30"))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(context.Background(), "APPT-20251120-AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.ConfirmationCode, got.ConfirmationCode)
}

func TestMemoryRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), "APPT-20251120-MISSING1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_Create_DuplicateID(t *testing.T) {
	repo := NewMemoryRepository()
	date := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(context.Background(), newBooking("APPT-20251120-AAAA1111", date, "10:00", "10:30"))
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), newBooking("APPT-20251120-AAAA1111", date, "11:00", "11:30"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestMemoryRepository_GetByDate_SortedByStartTime(t *testing.T) {
	repo := NewMemoryRepository()
	date := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)

	// Вставляем не по порядку
	for _, b := range []*domain.Booking{
		newBooking("APPT-20251120-CCCC3333", date, "14:00", "14:30"),
		newBooking("APPT-20251120-AAAA1111", date, "09:00", "09:30"),
		newBooking("APPT-20251120-BBBB2222", date, "11:15", "11:45"),
	} {
		_, err := repo.Create(context.Background(), b)
		require.NoError(t, err)
	}

	got, err := repo.GetByDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.EqualValues(t, "09:00", got[0].StartTime)
	assert.EqualValues(t, "11:15", got[1].StartTime)
	assert.EqualValues(t, "14:00", got[2].StartTime)
}

func TestMemoryRepository_GetByDate_IsolatedByDate(t *testing.T) {
	repo := NewMemoryRepository()
	day1 := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(context.Background(), newBooking("APPT-20251120-AAAA1111", day1, "10:00", "10:30"))
	require.NoError(t, err)

	got, err := repo.GetByDate(context.Background(), day2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryRepository_GetByDate_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	date := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(context.Background(), newBooking("APPT-20251120-AAAA1111", date, "10:00", "10:30"))
	require.NoError(t, err)

	got, err := repo.GetByDate(context.Background(), date)
	require.NoError(t, err)
	got[0].Patient.Name = "mutated"

	fresh, err := repo.GetByID(context.Background(), "APPT-20251120-AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", fresh.Patient.Name)
}
