package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rovart/BookingService/pkg/dbmetrics"
	"github.com/rovart/BookingService/pkg/pgerrors"
)

var (
	ErrTransactionBegin   = errors.New("txmanager: failed to begin transaction")
	ErrTransactionCommit  = errors.New("txmanager: failed to commit transaction")
	ErrMaxRetriesExceeded = errors.New("txmanager: transaction failed after max retries")
)

// DefaultMaxRetries количество повторов сериализуемой транзакции при конфликте
const DefaultMaxRetries = 3

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Manager выполняет функции в транзакции, передавая её через контекст
type Manager struct {
	db         TxBeginner
	maxRetries int
	backoff    time.Duration
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *Manager {
	return &Manager{
		db:         db,
		maxRetries: DefaultMaxRetries,
		backoff:    100 * time.Millisecond,
	}
}

// WithRetries переопределяет количество повторов и базовую паузу между ними
func (m *Manager) WithRetries(maxRetries int, backoff time.Duration) *Manager {
	m.maxRetries = maxRetries
	m.backoff = backoff
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (READ COMMITTED)
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// При serialization_failure / deadlock транзакция повторяется целиком до maxRetries раз
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	for attempt := 0; ; attempt++ {
		err := m.run(ctx, opts, fn)
		if err == nil || !pgerrors.IsRetryable(err) {
			return err
		}

		if attempt >= m.maxRetries {
			return fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
		}

		wait := time.Duration(attempt+1) * m.backoff
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransactionBegin, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransactionCommit, err)
	}

	return nil
}
