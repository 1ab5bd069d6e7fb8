package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/psqlbuilder"
)

// Repository PostgreSQL-репозиторий бронирований.
// Альтернатива MemoryRepository для окружений, где нужна персистентность
// (выбирается через storage.driver в конфиге).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр PostgreSQL репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"confirmation_code",
	"appointment_type",
	"booking_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"patient_name",
	"patient_email",
	"patient_phone",
	"reason",
	"status",
	"created_at",
}

// Create сохраняет новое бронирование
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"confirmation_code",
			"appointment_type",
			"booking_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"patient_name",
			"patient_email",
			"patient_phone",
			"reason",
			"status",
		).
		Values(
			b.ID,
			b.ConfirmationCode,
			b.AppointmentType,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.DurationMinutes,
			b.Patient.Name,
			b.Patient.Email,
			b.Patient.Phone,
			b.Reason,
			b.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	created := *b
	created.CreatedAt = createdAt.Time
	return &created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByDate получает бронирования на дату, отсортированные по времени начала.
// Внутри активной транзакции добавляет FOR UPDATE: день блокируется на время
// проверки доступности и вставки в usecase создания бронирования.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ConfirmationCode,
		&b.AppointmentType,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.DurationMinutes,
		&b.Patient.Name,
		&b.Patient.Email,
		&b.Patient.Phone,
		&b.Reason,
		&b.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}
