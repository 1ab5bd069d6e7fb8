package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
)

// MemoryRepository in-memory реестр подтверждённых бронирований.
// Хранилище по умолчанию: данные живут до перезапуска процесса.
// Взаимоисключение check-then-insert обеспечивает transaction manager
// уровнем выше; RWMutex здесь защищает сами структуры от гонок
// читателей с писателем.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]domain.Booking
	byDate map[string][]string // date (YYYY-MM-DD) -> booking IDs
}

// NewMemoryRepository создает пустой in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]domain.Booking),
		byDate: make(map[string][]string),
	}
}

// Create сохраняет бронирование и возвращает его копию с выставленным CreatedAt
func (r *MemoryRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; exists {
		return nil, ErrDuplicateID
	}

	stored := *b
	stored.CreatedAt = time.Now()

	dateKey := stored.Date.Format(domain.DateFormat)
	r.byID[stored.ID] = stored
	r.byDate[dateKey] = append(r.byDate[dateKey], stored.ID)

	result := stored
	return &result, nil
}

// GetByID возвращает бронирование по идентификатору
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	result := b
	return &result, nil
}

// GetByDate возвращает снапшот бронирований на дату, отсортированный по времени начала.
// Возвращаются копии: мутации результата не затрагивают хранилище.
func (r *MemoryRepository) GetByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byDate[date.Format(domain.DateFormat)]
	result := make([]*domain.Booking, 0, len(ids))
	for _, id := range ids {
		b := r.byID[id]
		result = append(result, &b)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result, nil
}
