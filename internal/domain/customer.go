package domain

import "time"

// Customer клиент, оформляющий бронирования
// Естественный ключ - email: повторная бронь с тем же email обновляет имя и телефон
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
