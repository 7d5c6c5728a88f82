// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/backlist/internal/platform/apperr"
)

// SQLSTATE codes the API distinguishes.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Already classified upstream
	if apperr.IsAppError(err) {
		return err
	}

	// 2. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	cause := fmt.Errorf("%s: %w", action, err)

	// 3. Unreachable store (connect failures, network errors, timeouts)
	if IsUnavailable(err) {
		return apperr.StoreUnavailable(cause)
	}

	// 4. Constraint violations reported by Postgres
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case uniqueViolation:
			conflict := apperr.Conflict("A record with the same unique value already exists")
			conflict.Cause = cause
			return conflict
		case foreignKeyViolation:
			unprocessable := apperr.Unprocessable("Referenced record does not exist")
			unprocessable.Cause = cause
			return unprocessable
		}
	}

	// 5. Unknown query errors become Internal Server Errors
	return apperr.Internal(cause)
}

// NotFound returns a 404 error labelled with the given resource name.
func NotFound(resource string) error {
	return apperr.NotFound(resource)
}

// IsUnavailable reports whether err indicates that the database could not be reached.
func IsUnavailable(err error) bool {
	var connectError *pgconn.ConnectError
	if errors.As(err, &connectError) {
		return true
	}

	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var networkError net.Error
	return errors.As(err, &networkError)
}
