package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownSlot возвращается для метки, которой нет в сетке слотов
var ErrUnknownSlot = errors.New("domain: unknown time slot")

// Slot один часовой интервал дневной сетки
type Slot struct {
	StartHour int
	EndHour   int
}

// Label каноническая метка слота, например "08:00 - 09:00"
func (s Slot) Label() string {
	return fmt.Sprintf("%02d:00 - %02d:00", s.StartHour, s.EndHour)
}

// StartOn возвращает момент начала слота в указанный календарный день (в часовом поясе бизнеса)
func (s Slot) StartOn(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, s.StartHour, 0, 0, 0, BusinessLocation)
}

// SlotGrid фиксированная сетка из восьми часовых слотов 08:00-16:00
// Единственный источник списка слотов для резолвера, writer'а и HTTP слоя
var SlotGrid = []Slot{
	{StartHour: 8, EndHour: 9},
	{StartHour: 9, EndHour: 10},
	{StartHour: 10, EndHour: 11},
	{StartHour: 11, EndHour: 12},
	{StartHour: 12, EndHour: 13},
	{StartHour: 13, EndHour: 14},
	{StartHour: 14, EndHour: 15},
	{StartHour: 15, EndHour: 16},
}

// SlotLabels возвращает метки всех слотов в порядке сетки
func SlotLabels() []string {
	labels := make([]string, len(SlotGrid))
	for i, s := range SlotGrid {
		labels[i] = s.Label()
	}
	return labels
}

// ParseSlot находит слот по метке
// Принимает каноническую форму "08:00 - 09:00" и компактную "08:00-09:00"
func ParseSlot(label string) (Slot, error) {
	normalized := normalizeLabel(label)
	for _, s := range SlotGrid {
		if s.Label() == normalized {
			return s, nil
		}
	}
	return Slot{}, fmt.Errorf("%w: %q", ErrUnknownSlot, label)
}

// IsCanonicalSlot проверяет, что метка принадлежит сетке
func IsCanonicalSlot(label string) bool {
	_, err := ParseSlot(label)
	return err == nil
}

func normalizeLabel(label string) string {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return strings.TrimSpace(label)
	}
	return strings.TrimSpace(parts[0]) + " - " + strings.TrimSpace(parts[1])
}
