package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrUnauthenticated возвращается, когда запрос без идентичности пользователя
	ErrUnauthenticated = errors.New("reservations: authentication required")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("reservations: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrSlotNotAvailable возвращается при попытке вернуть отмененную бронь на уже занятый слот
	ErrSlotNotAvailable = errors.New("reservations: slot is not available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
