package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rovart/BookingService/internal/api/handlers"
	"github.com/rovart/BookingService/internal/domain"
)

const (
	msgTokenRequired = "access token required"
	msgTokenInvalid  = "invalid or expired token"
)

type actorKey struct{}

// Claims JWT claims, выдаваемые identity-провайдером
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenValidator проверяет подпись HS256 и срок действия токена
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator создает валидатор; пустой issuer не проверяется
func NewTokenValidator(secret, issuer string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret), issuer: issuer}
}

// Validate разбирает токен и возвращает пользователя
func (v *TokenValidator) Validate(tokenString string) (*domain.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("validate token: subject claim is empty")
	}

	return &domain.Actor{UserID: claims.Subject, Email: claims.Email}, nil
}

// Auth требует валидный Bearer токен; без него запрос отклоняется с 401
func Auth(validator *TokenValidator, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgTokenRequired)
				return
			}

			actor, err := validator.Validate(token)
			if err != nil {
				log.Warn("%s %s - Token validation failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgTokenInvalid)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// OptionalAuth кладет пользователя в контекст, если токен есть и валиден; иначе пропускает запрос как анонимный
func OptionalAuth(validator *TokenValidator, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := validator.Validate(token)
			if err != nil {
				log.Warn("%s %s - Ignoring invalid token on public route: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor кладет пользователя в контекст
func WithActor(ctx context.Context, actor *domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// GetActor возвращает пользователя, установленный Auth/OptionalAuth
func GetActor(ctx context.Context) (*domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(*domain.Actor)
	return actor, ok && actor != nil
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return "", false
	}
	return actor.UserID, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}
