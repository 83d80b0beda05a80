package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
// Например BOOKING_DATABASE_PASSWORD, BOOKING_IDENTITY_SECRET_KEY
const EnvPrefix = "BOOKING"

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Identity IdentityConfig `toml:"identity"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
	RequestTimeout  int `toml:"request_timeout" split_words:"true"` // бюджет одного запроса, после него 504
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" envconfig:"dbname"`
	SSLMode         string `toml:"sslmode" envconfig:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"` // пусто: только stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// IdentityConfig внешний провайдер идентичности и проверка токенов
type IdentityConfig struct {
	BaseURL     string   `toml:"base_url" split_words:"true"`
	SecretKey   string   `toml:"secret_key" split_words:"true"`
	Timeout     int      `toml:"timeout"` // секунды
	AdminEmails []string `toml:"admin_emails" split_words:"true"`
	JWTSecret   string   `toml:"jwt_secret" envconfig:"jwt_secret"`
	JWTIssuer   string   `toml:"jwt_issuer" envconfig:"jwt_issuer"`
}

type BookingConfig struct {
	MaxTxRetries   int `toml:"max_tx_retries" split_words:"true"`
	RetryBackoffMs int `toml:"retry_backoff_ms" split_words:"true"`
}

// Load читает TOML файл, применяет переменные окружения и значения по умолчанию
// Отсутствующий файл не ошибка: конфигурация может прийти целиком из окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	setInt(&c.Server.HTTPPort, 8080)
	setInt(&c.Server.ReadTimeout, 10)
	setInt(&c.Server.WriteTimeout, 10)
	setInt(&c.Server.IdleTimeout, 60)
	setInt(&c.Server.ShutdownTimeout, 15)
	setInt(&c.Server.RequestTimeout, 5)

	setString(&c.Database.Host, "localhost")
	setInt(&c.Database.Port, 5432)
	setString(&c.Database.SSLMode, "disable")
	setInt(&c.Database.MaxOpenConns, 25)
	setInt(&c.Database.MaxIdleConns, 5)
	setInt(&c.Database.ConnMaxLifetime, 300)

	setString(&c.Logs.Level, "info")

	setString(&c.Metrics.Path, "/metrics")
	setString(&c.Metrics.ServiceName, "booking_service")

	setInt(&c.Identity.Timeout, 5)

	setInt(&c.Booking.MaxTxRetries, 3)
	setInt(&c.Booking.RetryBackoffMs, 100)

	for i, email := range c.Identity.AdminEmails {
		c.Identity.AdminEmails[i] = strings.ToLower(strings.TrimSpace(email))
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.User == "" {
		problems = append(problems, "database.user is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Identity.JWTSecret == "" {
		problems = append(problems, "identity.jwt_secret is required")
	}
	if c.Booking.MaxTxRetries < 0 {
		problems = append(problems, "booking.max_tx_retries must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

func (s ServerConfig) RequestBudget() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

func (i IdentityConfig) RequestTimeout() time.Duration {
	return time.Duration(i.Timeout) * time.Second
}

func (b BookingConfig) RetryBackoff() time.Duration {
	return time.Duration(b.RetryBackoffMs) * time.Millisecond
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}
