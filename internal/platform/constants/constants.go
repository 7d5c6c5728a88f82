// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Session issuer and cookie configuration.
  - Catalog: List caps and copy markers.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "backlist-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim of admin session tokens.
	AuthIssuer = "backlist.club"

	// AdminSubject is the 'sub' claim. There is exactly one operator.
	AdminSubject = "admin"

	// SessionCookieName is the name of the admin session cookie.
	SessionCookieName = "admin_auth"

	// SessionCookiePath scopes the cookie to the whole site.
	SessionCookiePath = "/"

	// SessionTTL is the lifetime of an admin session.
	SessionTTL = 7 * 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID      = "X-Request-ID"
	HeaderXRealIP         = "X-Real-IP"
	HeaderXForwardedFor   = "X-Forwarded-For"
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// # Catalog

const (
	// BookListLimit caps the unfiltered admin book list.
	BookListLimit = 200

	// BookSearchLimit caps the admin book list when a search query is given.
	BookSearchLimit = 100

	// CopyNameSuffix marks the required field of a duplicated record.
	CopyNameSuffix = " (Kopie)"

	// CopySlugSuffix marks the slug of a duplicated record.
	CopySlugSuffix = "-kopie"

	// FeaturedBookLimit caps the public featured shelf.
	FeaturedBookLimit = 24

	// TopicBookLimit caps the books listed on a topic page.
	TopicBookLimit = 48

	// CuratorBookLimit caps the books listed on a curator page.
	CuratorBookLimit = 24
)

// # Field Limits

const (
	// MaxShortText bounds single-line fields such as slugs, colors and ISBNs.
	MaxShortText = 255

	// MaxLinkText bounds URLs, cover paths and link templates.
	MaxLinkText = 2048

	// MaxLongText bounds descriptions and bios.
	MaxLongText = 20000
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixRevokedSession = "auth:revoked:"
	RedisPrefixCatalog        = "catalog:"
)
