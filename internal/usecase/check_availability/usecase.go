package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
)

// UseCase use case получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Операция только читает реестр: состояние бронирований не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, type=%s",
		req.Date.Format(domain.DateFormat), req.AppointmentType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	duration, _ := domain.AppointmentTypeDuration(req.AppointmentType)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Генерируем кандидатные слоты по сетке рабочего дня
	starts, err := generateTimeSlots(uc.schedule, duration, req.Date, now)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Получаем все бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Помечаем занятость каждого слота по пересечению с бронированиями
	slots, err := markAvailability(starts, duration, bookings)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to mark availability: %v", err)
		return nil, fmt.Errorf("%w: failed to mark availability: %v", ErrInternal, err)
	}

	availableCount := 0
	for _, slot := range slots {
		if slot.Available {
			availableCount++
		}
	}

	uc.logger.Info("CheckAvailability: %d slots (%d available) for date=%s, type=%s",
		len(slots), availableCount, req.Date.Format(domain.DateFormat), req.AppointmentType)

	return &Response{
		Date:            req.Date,
		AppointmentType: req.AppointmentType,
		DurationMinutes: duration,
		Slots:           slots,
		TotalSlots:      len(slots),
		AvailableCount:  availableCount,
	}, nil
}
