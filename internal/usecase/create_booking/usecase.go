package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	schedule     Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности слота и вставка выполняются одной атомарной единицей
// внутри DoSerializable: конкурентные запросы на один слот не могут оба пройти
// проверку пересечений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: type=%s, date=%s, time=%s",
		req.AppointmentType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация структурных полей запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	duration, _ := domain.AppointmentTypeDuration(req.AppointmentType)

	// 2. Валидация полей пациента - все ошибки собираются вместе,
	// до любых проверок доступности
	if errs := validatePatient(req.Patient); errs != nil {
		uc.logger.Warn("CreateBooking: patient validation failed: %v", errs)
		return nil, errs
	}
	if errs := validateReason(req.Reason); errs != nil {
		uc.logger.Warn("CreateBooking: reason validation failed: %v", errs)
		return nil, errs
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Прошедшие дата или время отклоняются до проверки доступности
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: past date rejected: date=%s, time=%s",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	// 5. Вычисляем конец окна и проверяем рабочие часы
	endTime, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	if err := validateBusinessHours(req.StartTime, endTime, uc.schedule); err != nil {
		uc.logger.Warn("CreateBooking: outside business hours: %s-%s", req.StartTime, endTime)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка доступности и вставка - одна атомарная единица
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем все бронирования на эту дату
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Проверяем пересечения по актуальному состоянию реестра,
		// а не по тому, что видел клиент на шаге выбора слота
		if overlapping := countOverlappingBookings(req.StartTime, endTime, bookings); overlapping > 0 {
			uc.logger.Warn("CreateBooking: slot conflict, %d overlapping booking(s) at %s-%s",
				overlapping, req.StartTime, endTime)
			return ErrSlotNotAvailable
		}

		// 6.3. Создаем бронирование
		booking := &domain.Booking{
			ID:               domain.NewBookingID(now),
			ConfirmationCode: domain.NewConfirmationCode(),
			AppointmentType:  req.AppointmentType,
			Date:             req.Date,
			StartTime:        req.StartTime,
			EndTime:          endTime,
			DurationMinutes:  duration,
			Patient: domain.Patient{
				Name:  req.Patient.Name,
				Email: req.Patient.Email,
				Phone: req.Patient.Phone,
			},
			Reason: req.Reason,
			Status: domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		BookingID:        result.ID,
		Status:           string(result.Status),
		ConfirmationCode: result.ConfirmationCode,
		AppointmentType:  result.AppointmentType,
		Date:             result.Date,
		StartTime:        result.StartTime,
		EndTime:          result.EndTime,
		DurationMinutes:  result.DurationMinutes,
		Patient: PatientInput{
			Name:  result.Patient.Name,
			Email: result.Patient.Email,
			Phone: result.Patient.Phone,
		},
		Reason:    result.Reason,
		CreatedAt: result.CreatedAt,
	}, nil
}
