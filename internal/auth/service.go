// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth guards the admin area with a single shared secret.

There are no user accounts. Logging in with the secret yields a signed session
token, stored client-side in a cookie. Logging out revokes the token's id in
Redis until the token would have expired anyway.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/ctxutil"
	"github.com/taibuivan/backlist/internal/platform/sec"
)

// Session is an issued admin session.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

// Service issues, verifies and revokes admin sessions.
type Service struct {
	tokens       *sec.TokenService
	passwordHash string
	revocations  RevocationStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewService hashes the shared admin secret once and returns the [Service].
func NewService(tokens *sec.TokenService, adminPassword string, revocations RevocationStore, logger *slog.Logger) (*Service, error) {
	hash, err := sec.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("auth: hash admin password: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		tokens:       tokens,
		passwordHash: hash,
		revocations:  revocations,
		logger:       logger,
		now:          time.Now,
	}, nil
}

/*
Login exchanges the shared secret for a session valid for [constants.SessionTTL].

Returns:
  - *Session: the signed token and its expiry
  - error: Unauthorized when the password does not match
*/
func (service *Service) Login(context context.Context, password string) (*Session, error) {
	logger := ctxutil.GetLogger(context)

	if !service.VerifyPassword(password) {
		logger.WarnContext(context, "admin_login_rejected")
		return nil, apperr.Unauthorized("Invalid password")
	}

	token, claims, err := service.tokens.GenerateSessionToken(constants.AdminSubject, constants.SessionTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	logger.InfoContext(context, "admin_login", slog.String("token_id", claims.ID))
	return &Session{Token: token, TokenID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Logout revokes token. Invalid or expired tokens need no revocation.
func (service *Service) Logout(context context.Context, token string) error {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil
	}

	remaining := claims.ExpiresAt.Time.Sub(service.now())
	if remaining <= 0 {
		return nil
	}

	if err := service.revocations.Revoke(context, claims.ID, remaining); err != nil {
		return apperr.StoreUnavailable(err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "admin_logout", slog.String("token_id", claims.ID))
	return nil
}

// VerifySession validates token and checks it has not been revoked. It returns the token id.
func (service *Service) VerifySession(context context.Context, token string) (string, error) {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return "", apperr.Unauthorized("Invalid session")
	}
	if claims.Subject != constants.AdminSubject {
		return "", apperr.Unauthorized("Invalid session")
	}

	revoked, err := service.revocations.IsRevoked(context, claims.ID)
	if err != nil {
		// Fails open while the revocation store is unreachable.
		service.logger.WarnContext(context, "session_revocation_check_failed", slog.Any("error", err))
		return claims.ID, nil
	}
	if revoked {
		return "", apperr.Unauthorized("Session has ended")
	}
	return claims.ID, nil
}

// VerifyPassword compares password against the shared secret in constant time.
func (service *Service) VerifyPassword(password string) bool {
	if password == "" {
		return false
	}
	return sec.CheckPasswordHash(password, service.passwordHash)
}
