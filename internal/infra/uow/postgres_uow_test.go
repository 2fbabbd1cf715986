//go:build unit

package uow

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", fmt.Errorf("debit: %w", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", fmt.Errorf("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := range 4 {
		floor := time.Duration(1<<attempt) * base
		for range 20 {
			got := backoff(attempt, base)
			assert.GreaterOrEqual(t, got, floor)
			assert.Less(t, got, floor+floor/5+1)
		}
	}

	assert.Zero(t, backoff(0, 0))
}

func TestNewAppliesOptions(t *testing.T) {
	u := New(nil, nil, WithRetries(7, time.Second))
	assert.Equal(t, 7, u.maxRetries)
	assert.Equal(t, time.Second, u.baseBackoff)

	d := New(nil, nil)
	assert.Equal(t, defaultMaxRetries, d.maxRetries)
}
