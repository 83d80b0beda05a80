package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSlotInPast возвращается, когда выбранный слот уже начался или дата прошла
	ErrSlotInPast = errors.New("create_reservation: slot is in the past")

	// ErrSlotNotAvailable возвращается, когда слот уже занят неотмененной бронью
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrTimeout возвращается, когда запрос не уложился в отведенное время
	ErrTimeout = errors.New("create_reservation: request timed out")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
