package arr

import (
	"fmt"

	"github.com/hasbyte1/go-amp-utils/object"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reordering
// ─────────────────────────────────────────────────────────────────────────────

// Move removes the element at index from and reinserts it at index to,
// shifting the elements in between. items is modified in place and returned.
//
//	Move([]int{1, 2, 3}, 2, 0) // → [3 1 2]
//	Move([]int{1, 2, 3}, 0, 2) // → [2 3 1]
//
// Out-of-range indices are not an error; they resolve the way two splice
// calls would. A negative from counts back from the end (-1 is the last
// element). A negative to counts back from the end of the slice with the
// element already removed, so Move(s, 0, -1) lands it second to last.
// Whatever is still out of range is clamped to the first or last position.
// An empty slice is returned unchanged.
func Move[T any](items []T, from, to int) []T {
	n := len(items)
	if n == 0 {
		return items
	}
	from = clamp(from, n)
	// to indexes the slice after removal, which has n-1 elements and
	// accepts an insert at position n-1.
	if to < 0 {
		to = max(to+n-1, 0)
	} else if to > n-1 {
		to = n - 1
	}
	if from == to {
		return items
	}
	el := items[from]
	if from > to {
		copy(items[to+1:from+1], items[to:from])
	} else {
		copy(items[from:to], items[from+1:to+1])
	}
	items[to] = el
	return items
}

// clamp resolves a splice start index against a sequence of length n and
// keeps it on an existing element.
func clamp(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// De-duplication
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice keeping the first occurrence of each element,
// in their original order. Elements are compared with ==.
//
// As with map keys, an interface-typed T holding a non-comparable dynamic
// value (a map or slice) panics; use [UniqueBy] or [UniqueDeep] for those.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy returns elements with duplicates removed using a key function.
// The first element producing each key wins.
func UniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueDeep removes structurally duplicate values, such as maps with the
// same content, keeping the first occurrence. Two elements are duplicates
// when their [object.Fingerprint] matches.
//
//	UniqueDeep([]any{map[string]any{"a": 1}, map[string]any{"a": 1.0}, 2})
//	// → [map[a:1] 2]
func UniqueDeep(items []any) ([]any, error) {
	seen := make(map[string]struct{}, len(items))
	out := make([]any, 0, len(items))
	for i, item := range items {
		fp, err := object.Fingerprint(item)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d: %w", ErrNotHashable, i, err)
		}
		if _, ok := seen[fp]; !ok {
			seen[fp] = struct{}{}
			out = append(out, item)
		}
	}
	return out, nil
}
