package domain

// Actor аутентифицированный пользователь из токена внешнего identity-провайдера
type Actor struct {
	UserID string
	Email  string
}
