// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

// Package query splits list-valued URL query parameters.
package query

import "strings"

// StringSlice parses a single comma-separated query string into a slice of
// trimmed tokens. Empty tokens are kept so callers can reject them.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	for i, v := range parts {
		parts[i] = strings.TrimSpace(v)
	}
	return parts
}
