package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const updateQuery = `UPDATE campaigns SET total_raised = total_raised + $1 WHERE id = $2`

func TestTxManager_Begin(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name        string
		prepareMock func(mock pgxmock.PgxPoolIface)
		fn          func(db *DB) TransactionalFn
		expectedErr error
	}{
		{
			name: "Commit on success",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(updateQuery)).
					WithArgs(int64(500), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, updateQuery, int64(500), 1)
					return err
				}
			},
		},
		{
			name: "Rollback on error",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error { return errBoom }
			},
			expectedErr: errBoom,
		},
		{
			name: "Begin failure",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errBoom)
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectedErr: errBoom,
		},
		{
			name: "Commit failure",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errBoom)
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectedErr: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.prepareMock(mock)
			db := New(mock)
			tm := NewTXManager(mock)

			err = tm.Begin(context.Background(), tt.fn(db))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_RetriesSerializationFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err = NewTXManager(mock).Begin(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &pgconn.PgError{Code: codeSerializationFailure}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_GivesUpAfterMaxRetries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	for i := 0; i < maxTxRetries; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	err = NewTXManager(mock).Begin(context.Background(), func(ctx context.Context) error {
		return &pgconn.PgError{Code: codeDeadlockDetected}
	})

	assert.True(t, IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_NestedJoinsOuter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tm := NewTXManager(mock)
	inner := false
	err = tm.Begin(context.Background(), func(ctx context.Context) error {
		return tm.Begin(ctx, func(ctx context.Context) error {
			inner = true
			return nil
		})
	})

	assert.NoError(t, err)
	assert.True(t, inner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: codeSerializationFailure}))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: codeUniqueViolation}))
}
