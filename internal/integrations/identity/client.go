package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rovart/BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего identity-провайдера
type Client struct {
	baseURL     string
	secretKey   string
	adminEmails map[string]struct{}
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента
// adminEmails список адресов, которые считаются администраторами независимо от метаданных
func NewClient(baseURL, secretKey string, adminEmails []string, timeout time.Duration, log Logger) *Client {
	allow := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			allow[e] = struct{}{}
		}
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		secretKey:   secretKey,
		adminEmails: allow,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser получает пользователя по ID
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &user, nil
}

// IsPrivileged проверяет административные права пользователя
// Любая ошибка провайдера означает "не администратор": доступ не расширяется при сбое
func (c *Client) IsPrivileged(ctx context.Context, actor domain.Actor) bool {
	if actor.UserID == "" {
		return false
	}

	user, err := c.GetUser(ctx, actor.UserID)
	if err != nil {
		c.log.Error("Identity provider unavailable, treating user=%s as not privileged: %v", actor.UserID, err)
		return false
	}

	if user.HasAdminRole() {
		return true
	}

	_, allowed := c.adminEmails[normalizeEmail(user.PrimaryEmail())]
	if allowed {
		c.log.Info("User=%s is privileged via admin email allow-list", actor.UserID)
	}
	return allowed
}

// normalizeEmail адреса сравниваются без учета регистра и пробелов по краям
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
