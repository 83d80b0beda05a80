//go:build integration

// Package pgtest поднимает Postgres в контейнере для интеграционных тестов
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/rovart/BookingService/internal/migrations"
	"github.com/rovart/BookingService/pkg/logger"
)

const (
	user     = "test"
	password = "testpass"
	dbName   = "booking"
	pgPort   = nat.Port("5432/tcp")
)

// Start запускает контейнер, применяет миграции и возвращает соединение
// Контейнер и соединение закрываются в t.Cleanup
func Start(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port.Port(), user, password, dbName)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForSQL(pgPort, "postgres", dsn).WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, pgPort)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn(host, port))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migrations.Up(ctx, db, logger.Nop())
	require.NoError(t, err, "failed to apply migrations")

	return db
}
