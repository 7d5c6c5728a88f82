// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/backlist/internal/platform/apperr"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/ctxutil"
	"github.com/taibuivan/backlist/internal/platform/respond"
)

// Authentication methods recorded on the admin session marker.
const (
	MethodCookie = "cookie"
	MethodBearer = "bearer"
	MethodBasic  = "basic"
)

// AdminVerifier checks the two kinds of admin credentials.
//
// Defining the interface here decouples the middleware from the auth service
// implementation, allowing fakes during unit testing.
type AdminVerifier interface {
	// VerifySession validates a signed session token and returns its token id.
	VerifySession(context context.Context, token string) (string, error)
	// VerifyPassword compares a candidate against the shared admin secret.
	VerifyPassword(password string) bool
}

// RequireAdmin blocks requests that carry no valid admin credential.
//
// # Flow
//  1. The session cookie, when present, must hold a valid token.
//  2. Otherwise 'Authorization: Bearer <token>' is verified the same way.
//  3. Otherwise 'Authorization: Basic' must carry the shared secret as password.
//  4. On success the session marker and an enriched logger are put in the context.
func RequireAdmin(verifier AdminVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			session, ok := authenticate(request, verifier)
			if !ok {
				writer.Header().Set(constants.HeaderWWWAuthenticate, `Basic realm="backlist admin"`)
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			ctx := ctxutil.WithAdmin(request.Context(), session)
			logger := ctxutil.GetLogger(ctx).With(slog.String("auth_method", session.Method))
			ctx = ctxutil.WithLogger(ctx, logger)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// authenticate resolves the first credential the request presents.
func authenticate(request *http.Request, verifier AdminVerifier) (*ctxutil.AdminSession, bool) {

	// ── 1. Session Cookie ─────────────────────────────────────────────────
	// An expired or revoked cookie still lets a header credential through.
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		if tokenID, err := verifier.VerifySession(request.Context(), cookie.Value); err == nil {
			return &ctxutil.AdminSession{Method: MethodCookie, TokenID: tokenID}, true
		}
	}

	header := request.Header.Get(constants.HeaderAuthorization)
	scheme, credential, found := strings.Cut(header, " ")
	if !found {
		return nil, false
	}

	switch strings.ToLower(scheme) {

	// ── 2. Bearer Token ───────────────────────────────────────────────────
	case MethodBearer:
		tokenID, err := verifier.VerifySession(request.Context(), strings.TrimSpace(credential))
		if err != nil {
			return nil, false
		}
		return &ctxutil.AdminSession{Method: MethodBearer, TokenID: tokenID}, true

	// ── 3. Basic Credentials ──────────────────────────────────────────────
	case MethodBasic:
		_, password, ok := request.BasicAuth()
		if !ok || !verifier.VerifyPassword(password) {
			return nil, false
		}
		return &ctxutil.AdminSession{Method: MethodBasic}, true
	}

	return nil, false
}
