// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request completion with method, path, status, duration_ms and the
request id. Request start is logged at debug level.

# Request IDs

RequestID assigns every request a UUID, echoed in the X-Request-ID
response header. A valid incoming X-Request-ID is kept so ids can be
traced through a proxy.

	id := middleware.RequestIDFromContext(r.Context())

# Security Headers

SecureHeaders sets X-Frame-Options, X-Content-Type-Options,
X-XSS-Protection and Referrer-Policy on every response:

	handler = middleware.SecureHeaders(cfg.Development)(handler)

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
*/
package middleware
