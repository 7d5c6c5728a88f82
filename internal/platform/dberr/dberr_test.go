package dberr_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/dberr"
)

/*
TestWrap classifies driver errors into application error codes.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperr.CodeNotFound},
		{"unique_violation", &pgconn.PgError{Code: "23505"}, apperr.CodeConflict},
		{"foreign_key_violation", &pgconn.PgError{Code: "23503"}, apperr.CodeUnprocessable},
		{"deadline", context.DeadlineExceeded, apperr.CodeStoreUnavailable},
		{"network", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, apperr.CodeStoreUnavailable},
		{"unknown", errors.New("syntax error"), apperr.CodeInternal},
		{"already_classified", apperr.NotFound("Book"), apperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.code, ae.Code)
		})
	}
}

/*
TestWrap_Nil returns nil for nil input.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_KeepsCause keeps the driver error reachable for server-side logging.
*/
func TestWrap_KeepsCause(t *testing.T) {
	driverErr := errors.New("relation does not exist")
	wrapped := dberr.Wrap(driverErr, "list_books")

	assert.ErrorIs(t, wrapped, driverErr)
	assert.Contains(t, apperr.As(wrapped).Cause.Error(), "list_books")
}
