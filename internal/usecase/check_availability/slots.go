package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicScheduler/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduler/pkg/types"
)

// generateTimeSlots генерирует список кандидатных времён начала слотов на день.
// Слоты привязаны к сетке с фиксированным шагом от времени открытия; шаг сетки
// не зависит от длительности приёма. Слот попадает в список, только если
// целиком помещается в рабочие часы (start + duration <= close).
func generateTimeSlots(
	schedule Schedule,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Прошедшие даты: слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Шаг 1: генерируем все слоты сетки от открытия до закрытия
	allSlots := make([]types.TimeString, 0)
	currentSlot := schedule.OpenTime

	for currentSlot.IsBefore(schedule.CloseTime) {
		slotEnd, err := currentSlot.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		// Слот, конец которого выходит за время закрытия, исключается.
		// Конец следующих слотов сетки ещё позже, дальше можно не идти.
		if slotEnd.IsAfter(schedule.CloseTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)

		currentSlot, err = currentSlot.AddMinutes(schedule.SlotIntervalMinutes)
		if err != nil {
			// Следующая точка сетки за пределами суток
			break
		}
	}

	// Шаг 2: если дата не сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: для сегодняшней даты отбрасываем слоты, начинающиеся раньше
	// текущего времени, округлённого вверх до границы сетки
	minStart, ok := roundUpToInterval(now, schedule.SlotIntervalMinutes)
	if !ok {
		// Округление вышло за пределы суток - сегодня слотов не осталось
		return []types.TimeString{}, nil
	}

	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(minStart) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// markAvailability строит итоговые слоты, помечая занятые.
// Слот занят, если пересекается хотя бы с одним существующим бронированием
// (строгое пересечение интервалов: границы могут соприкасаться).
func markAvailability(
	starts []types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) ([]Slot, error) {
	result := make([]Slot, 0, len(starts))

	for _, start := range starts {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		available := true
		for _, b := range bookings {
			if b.Overlaps(start, end) {
				available = false
				break
			}
		}

		result = append(result, Slot{
			StartTime: start,
			EndTime:   end,
			Available: available,
		})
	}

	return result, nil
}

// roundUpToInterval округляет время вверх до ближайшей границы сетки.
// Возвращает ok=false, если результат выходит за пределы суток.
func roundUpToInterval(t time.Time, intervalMinutes int) (types.TimeString, bool) {
	total := t.Hour()*60 + t.Minute()
	if total%intervalMinutes != 0 {
		total = (total/intervalMinutes + 1) * intervalMinutes
	}
	if total >= 24*60 {
		return "", false
	}
	return types.TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
