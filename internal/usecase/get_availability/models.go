package get_availability

import "time"

// Request модель запроса доступности на день
type Request struct {
	Date time.Time // Календарный день в часовом поясе бизнеса
}

// Response доступность всех слотов сетки на день
type Response struct {
	Date     time.Time
	Timezone string
	Slots    map[string]bool // метка слота -> можно ли бронировать
	Degraded bool            // хранилище было недоступно, занятость не учтена
}
