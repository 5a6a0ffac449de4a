// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package limits provides shared parsing for list-size query parameters.
//
// # Overview
//
// The catalog API is limit-only (no page-based navigation), so this package
// standardizes how a "limit" query parameter is read and clamped. Unlike
// page-based pagination, limit=0 is a legal request for an empty list.
package limits

import (
	"net/http"
	"strconv"
)

// FromRequest parses the "limit" query parameter from an HTTP request.
//
// # Clamping
//
//   - Missing, negative, or unparseable values fall back to defaultLimit.
//   - Values above maxLimit are clamped to maxLimit.
//   - Zero is returned as-is: the caller gets an empty list.
func FromRequest(r *http.Request, defaultLimit, maxLimit int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultLimit
	}

	return Clamp(n, maxLimit)
}

// Clamp bounds n to the [0, max] interval.
func Clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
