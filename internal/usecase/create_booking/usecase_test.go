package create_booking

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	storage "github.com/m04kA/SMC-ClinicScheduler/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/ptr"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

var (
	testNow    = time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	futureDate = time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)
)

type stubTimeProvider struct {
	now time.Time
}

func (p *stubTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *storage.MemoryRepository) {
	repo := storage.NewMemoryRepository()
	schedule := Schedule{OpenTime: "09:00", CloseTime: "17:00", SlotIntervalMinutes: 15}
	uc := NewUseCase(repo, simpletxmanager.NewTransactionManager(), schedule, noopLogger{})
	uc.timeProvider = &stubTimeProvider{now: testNow}
	return uc, repo
}

func validRequest() *Request {
	return &Request{
		AppointmentType: domain.TypeFollowup,
		Date:            futureDate,
		StartTime:       "10:00",
		Patient: PatientInput{
			Name:  "Jane Doe",
			Email: "jane.doe@example.com",
			Phone: "+1 (555) 123-4567",
		},
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc, repo := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.TypeFollowup, resp.AppointmentType)
	assert.Equal(t, 15, resp.DurationMinutes)
	assert.EqualValues(t, "10:00", resp.StartTime)
	assert.EqualValues(t, "10:15", resp.EndTime)
	assert.Equal(t, "Jane Doe", resp.Patient.Name)

	assert.True(t, strings.HasPrefix(resp.BookingID, "APPT-20251120-"))
	assert.Len(t, resp.ConfirmationCode, 6)
	assert.False(t, resp.CreatedAt.IsZero())

	// Бронирование действительно лежит в реестре
	stored, err := repo.GetByID(context.Background(), resp.BookingID)
	require.NoError(t, err)
	assert.Equal(t, resp.ConfirmationCode, stored.ConfirmationCode)
}

func TestUseCase_Execute_WithReason(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.Reason = ptr.Ptr("persistent headache")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "persistent headache", *resp.Reason)
}

func TestUseCase_Execute_SlotConflict(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторное бронирование того же слота
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_OverlappingWindowConflict(t *testing.T) {
	uc, _ := newTestUseCase()

	// Физический осмотр 10:00-10:45
	first := validRequest()
	first.AppointmentType = domain.TypePhysical
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Консультация 10:30-11:00 пересекает хвост осмотра
	second := validRequest()
	second.AppointmentType = domain.TypeConsultation
	second.StartTime = "10:30"
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Консультация 10:45-11:15 граничит с осмотром и проходит
	third := validRequest()
	third.AppointmentType = domain.TypeConsultation
	third.StartTime = "10:45"
	_, err = uc.Execute(context.Background(), third)
	assert.NoError(t, err)
}

func TestUseCase_Execute_DifferentDatesDoNotConflict(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.Date = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), other)
	assert.NoError(t, err)
}

func TestUseCase_Execute_InvalidAppointmentType(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.AppointmentType = "surgery"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidAppointmentType)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.Date = time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestUseCase_Execute_TodayEarlierTime(t *testing.T) {
	uc, _ := newTestUseCase()

	req := validRequest()
	req.Date = time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	req.StartTime = "09:00" // now is 12:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestUseCase_Execute_OutsideBusinessHours(t *testing.T) {
	uc, _ := newTestUseCase()

	tests := []struct {
		name      string
		startTime string
	}{
		{"before opening", "08:00"},
		{"window crosses closing", "16:50"},
		{"after closing", "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = types.TimeString(tt.startTime)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideBusinessHours)
		})
	}
}

func TestUseCase_Execute_NonCanonicalStartTimeRejected(t *testing.T) {
	uc, _ := newTestUseCase()

	// Слот 09:00 занят
	booked := validRequest()
	booked.StartTime = "09:00"
	_, err := uc.Execute(context.Background(), booked)
	require.NoError(t, err)

	// "9:00" парсится, но лексикографически не сравнивается с "09:00":
	// такое значение не должно пройти мимо проверки пересечений
	req := validRequest()
	req.StartTime = "9:00"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_PatientValidationBeforeAvailability(t *testing.T) {
	uc, _ := newTestUseCase()

	// Слот уже занят, но невалидные данные пациента должны отклоняться раньше
	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Patient.Email = "not-an-email"
	req.Patient.Phone = "123"

	_, err = uc.Execute(context.Background(), req)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs.Fields, 2)
	assert.NotErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	uc, _ := newTestUseCase()

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	// Все воркеры бронируют один и тот же слот одновременно
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotNotAvailable)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent request must win the slot")
}
