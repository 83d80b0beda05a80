package domain

import "time"

// Service услуга каталога
// ID - стабильный внешний ключ (например "bridal-trial"), по нему выполняется upsert
type Service struct {
	ID              string
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
