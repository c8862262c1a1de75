// Package editor computes the replacement arrays that editors dispatch to the store.
// Every helper returns a new slice and leaves its input untouched.
package editor

import (
	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/types"
)

// NewID returns a fresh entity id.
func NewID() string {
	return uuid.NewString()
}

// Append returns items with item added at the end.
func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Update returns items with fn applied to the entity whose id matches. Unknown ids
// return an unchanged copy.
func Update[T types.Entity](items []T, id string, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if item.EntityID() == id {
			item = fn(item)
		}
		out[i] = item
	}
	return out
}

// Remove returns items without the entity whose id matches.
func Remove[T types.Entity](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			out = append(out, item)
		}
	}
	return out
}

// Move shifts the entity with the given id by delta positions, clamped to the slice.
func Move[T types.Entity](items []T, id string, delta int) []T {
	out := make([]T, len(items))
	copy(out, items)

	from := indexOf(out, id)
	if from < 0 || delta == 0 {
		return out
	}
	to := clamp(from+delta, 0, len(out)-1)

	item := out[from]
	if to > from {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = item
	return out
}

// Find returns the entity with the given id.
func Find[T types.Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func indexOf[T types.Entity](items []T, id string) int {
	for i, item := range items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
