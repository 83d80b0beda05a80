package get_availability

import (
	"time"

	"github.com/rovart/BookingService/internal/domain"
)

// Resolve вычисляет доступность каждого слота сетки на дату
//
// Правила применяются в порядке:
//  1. все слоты сетки изначально доступны
//  2. дата раньше сегодняшней (по календарю бизнеса): все слоты недоступны
//  3. слот с бронью недоступен
//  4. если дата сегодня: слот, начало которого <= now, недоступен
//
// В результате всегда ровно len(domain.SlotGrid) ключей. Метки reserved вне сетки игнорируются.
func Resolve(date, now time.Time, reserved []string) map[string]bool {
	slots := make(map[string]bool, len(domain.SlotGrid))

	if domain.IsDateInPast(date, now) {
		for _, s := range domain.SlotGrid {
			slots[s.Label()] = false
		}
		return slots
	}

	taken := make(map[string]struct{}, len(reserved))
	for _, label := range reserved {
		if slot, err := domain.ParseSlot(label); err == nil {
			taken[slot.Label()] = struct{}{}
		}
	}

	today := domain.IsToday(date, now)
	for _, s := range domain.SlotGrid {
		_, isTaken := taken[s.Label()]
		available := !isTaken

		if available && today && !s.StartOn(date).After(now) {
			available = false
		}

		slots[s.Label()] = available
	}

	return slots
}

// IsSlotInPast true, если слот уже начался или дата прошла
// Используется writer'ом для той же проверки, что и резолвер
func IsSlotInPast(date time.Time, slot domain.Slot, now time.Time) bool {
	if domain.IsDateInPast(date, now) {
		return true
	}
	return domain.IsToday(date, now) && !slot.StartOn(date).After(now)
}
