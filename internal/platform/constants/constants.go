// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the preprints front end.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Page Metadata: fixed Open Graph values shared by every content page.
  - Headers and JSON field names.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "preprints"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 25 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Page Metadata

const (
	// OGImage is the share image used for every preprint.
	OGImage = "//osf.io/static/img/circle_logo.png"

	// OGImageType is the MIME type of [OGImage].
	OGImageType = "image/png"

	// OGSiteName is the og:site_name value.
	OGSiteName = "Open Science Framework"

	// OGTypeArticle is the og:type of a preprint page.
	OGTypeArticle = "article"

	// OGTypeAuthor marks the start of an author credit group.
	OGTypeAuthor = "article:author"

	// PreprintsPathPrefix is the canonical path prefix of a content page.
	PreprintsPathPrefix = "/preprints/"
)

// # Session

const (
	// SessionCookieName carries the viewer session token when no Authorization header is sent.
	SessionCookieName = "preprints_session"

	// SessionIssuer is the expected 'iss' claim of viewer session tokens.
	SessionIssuer = "preprints"
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderAuthorization  = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldChecks  = "checks"
	FieldVersion = "version"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixProviders = "preprints:providers:"
)
