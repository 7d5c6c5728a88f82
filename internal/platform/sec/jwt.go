// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. The admin session cookie carries an HS256 token signed
// with the server-held session secret.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the minimum accepted HMAC key size in bytes.
const MinSecretLength = 32

// ErrWeakSecret is returned when the signing secret is too short.
var ErrWeakSecret = errors.New("sec: session secret must be at least 32 bytes")

// SessionClaims is the payload of an admin session token.
//
// There is a single operator, so the subject is constant and the token ID
// (jti) is what identifies one login for revocation.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// TokenService signs and verifies admin session tokens using HS256.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &TokenService{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// GenerateSessionToken issues a signed token for subject valid for timeToLive.
func (service *TokenService) GenerateSessionToken(subject string, timeToLive time.Duration) (string, *SessionClaims, error) {
	tokenID, err := uuid.NewV7()
	if err != nil {
		return "", nil, fmt.Errorf("sec: failed to generate token id: %w", err)
	}

	currentTime := service.now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, claims, nil
}

// VerifyToken checks the signature, issuer and expiry of a token string.
func (service *TokenService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	},
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
