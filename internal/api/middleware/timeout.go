package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout устанавливает дедлайн контекста запроса
// Ответ формирует сам обработчик: use case переводит истекший дедлайн в 504
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
