package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "reservations_active_slot_key"}
	wrapped := fmt.Errorf("insert: %w", unique)

	assert.True(t, IsUniqueViolation(wrapped))
	assert.Equal(t, "reservations_active_slot_key", Constraint(wrapped))
	assert.False(t, IsRetryable(wrapped))

	assert.True(t, IsRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, IsRetryable(&pq.Error{Code: "40P01"}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))

	plain := errors.New("connection reset")
	assert.Equal(t, "", Code(plain))
	assert.False(t, IsUniqueViolation(plain))
	assert.False(t, IsRetryable(nil))
}
