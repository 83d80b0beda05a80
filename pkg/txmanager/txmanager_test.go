package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovart/BookingService/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	opts     []*sql.TxOptions
	beginErr error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	b.opts = append(b.opts, opts)
	return tx, nil
}

func TestManager_CommitAndRollback(t *testing.T) {
	t.Run("commit on success", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)

		err := m.Do(context.Background(), func(ctx context.Context) error {
			assert.True(t, dbmetrics.IsInTransaction(ctx))
			return nil
		})

		require.NoError(t, err)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].committed)
		assert.False(t, db.txs[0].rolledBack)
	})

	t.Run("rollback on error", func(t *testing.T) {
		db := &fakeBeginner{}
		m := NewTransactionManager(db)
		boom := errors.New("boom")

		err := m.Do(context.Background(), func(ctx context.Context) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.True(t, db.txs[0].rolledBack)
		assert.False(t, db.txs[0].committed)
	})

	t.Run("begin failure", func(t *testing.T) {
		m := NewTransactionManager(&fakeBeginner{beginErr: errors.New("no conn")})
		err := m.Do(context.Background(), func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrTransactionBegin)
	})
}

func TestManager_DoSerializableRetries(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db).WithRetries(2, time.Millisecond)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, db.opts, 3)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
}

func TestManager_DoSerializableGivesUp(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{}).WithRetries(1, time.Millisecond)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40P01"}
	})

	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
}

func TestManager_NonRetryableNotRepeated(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{}).WithRetries(3, time.Millisecond)

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return &pq.Error{Code: "23505"}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestManager_NestedReusesTransaction(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, db.txs, 1)
}
