// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package growbuf implements an append-only buffer with doubling growth.
//
// A Buffer may be given a limit on the number of elements it will hold.
// Growing past that limit is treated as an allocation failure: the append
// reports ErrAllocation and the buffer is left empty, with no storage.
package growbuf

import "errors"

// ErrAllocation is reported when a buffer cannot grow to hold another
// element.
var ErrAllocation = errors.New("allocation failed")

// A Buffer is an append-only sequence of values of type T.
// The zero value is ready for use and has no limit.
type Buffer[T any] struct {
	buf   []T
	limit int // maximum number of elements; 0 means no limit
}

// New constructs an empty buffer that will hold at most limit elements.
// If limit ≤ 0, the buffer is unbounded.
func New[T any](limit int) *Buffer[T] {
	return &Buffer[T]{limit: max(limit, 0)}
}

// Len reports the number of elements in b.
func (b *Buffer[T]) Len() int { return len(b.buf) }

// Cap reports the number of elements b can hold before it must grow.
func (b *Buffer[T]) Cap() int { return cap(b.buf) }

// Items returns the contents of b. The slice aliases the storage of b, and
// is only valid until the next call to Append, Shrink, or Reset.
func (b *Buffer[T]) Items() []T { return b.buf }

// Last returns a pointer to the last element of b, which must be non-empty.
// The pointer is only valid until the next call to Append, Shrink, or Reset.
func (b *Buffer[T]) Last() *T { return &b.buf[len(b.buf)-1] }

// Append adds v to the end of b. If b must grow and cannot, Append reports
// ErrAllocation and b is reset to empty.
func (b *Buffer[T]) Append(v T) error {
	if err := b.growToFit(len(b.buf) + 1); err != nil {
		return err
	}
	b.buf = append(b.buf, v)
	return nil
}

// Shrink reallocates the storage of b to hold exactly its current contents.
func (b *Buffer[T]) Shrink() {
	if cap(b.buf) == len(b.buf) {
		return
	} else if len(b.buf) == 0 {
		b.buf = nil
		return
	}
	exact := make([]T, len(b.buf))
	copy(exact, b.buf)
	b.buf = exact
}

// Reset discards the contents and storage of b.
func (b *Buffer[T]) Reset() { b.buf = nil }

// growToFit ensures b has capacity for at least n elements, doubling the
// capacity (starting from 1) as often as needed.
func (b *Buffer[T]) growToFit(n int) error {
	if n <= cap(b.buf) {
		return nil
	}
	if b.limit > 0 && n > b.limit {
		b.Reset()
		return ErrAllocation
	}
	c := max(cap(b.buf), 1)
	for c < n {
		c *= 2
	}
	if b.limit > 0 && c > b.limit {
		c = b.limit
	}
	next := make([]T, len(b.buf), c)
	copy(next, b.buf)
	b.buf = next
	return nil
}
