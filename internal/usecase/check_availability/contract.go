package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все бронирования на конкретную дату,
	// отсортированные по времени начала
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Schedule рабочие часы клиники и шаг сетки слотов
type Schedule struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotIntervalMinutes int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
