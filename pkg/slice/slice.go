// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

// Package slice complements the standard [slices] package with a generic Map.
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
// A nil input yields a nil result.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}
