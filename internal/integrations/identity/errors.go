package identity

import "errors"

var (
	// ErrUserNotFound возвращается, когда провайдер не знает пользователя
	ErrUserNotFound = errors.New("identity client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
