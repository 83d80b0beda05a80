package domain

import (
	"fmt"
	"time"
)

// ParseDate разбирает календарную дату YYYY-MM-DD в часовом поясе бизнеса
// Несуществующие даты (2025-02-30) отклоняются
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, value, BusinessLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

// DateOnly отбрасывает время, сохраняя календарные компоненты исходного значения
// Дата из БД приходит как полночь UTC, поэтому компоненты берутся без перевода в другой пояс
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, BusinessLocation)
}

// Today текущий календарный день в часовом поясе бизнеса
func Today(now time.Time) time.Time {
	return DateOnly(now.In(BusinessLocation))
}

// IsDateInPast true, если дата строго раньше сегодняшнего дня (по календарю бизнеса)
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(Today(now))
}

// IsToday true, если дата совпадает с сегодняшним днем в часовом поясе бизнеса
func IsToday(date, now time.Time) bool {
	return DateOnly(date).Equal(Today(now))
}
