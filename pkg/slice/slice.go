// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with generic
helpers for building response lists.
*/
package slice

// Map transforms every element. The result is never nil, so it encodes as a
// JSON array even when input is empty.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// GroupBy buckets elements by key, keeping their relative order.
func GroupBy[T any, K comparable](input []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range input {
		k := key(v)
		groups[k] = append(groups[k], v)
	}
	return groups
}
