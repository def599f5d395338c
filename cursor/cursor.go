// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a parsed JSON value.
package cursor

import (
	"errors"
	"fmt"
	"math"

	"github.com/creachadair/jparse"
)

var (
	// ErrNotFound is reported when a path names a key or index that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrWrongType is reported when a path element or accessor does not
	// match the kind of the value under the cursor.
	ErrWrongType = errors.New("wrong value type")
)

// Path traverses a sequential path into the structure of v where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path(v *jparse.Value, path ...any) (*jparse.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a jparse.Value.
type Cursor struct {
	org *jparse.Value
	stk []*jparse.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *jparse.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() *jparse.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() *jparse.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []*jparse.Value {
	return append([]*jparse.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting object
// keys), integers (denoting offsets into arrays or objects), or functions
// (see below). If the path cannot be completely consumed, traversal stops
// and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string resolves to the value of the first member with that key.
//
// If a path element is an integer, the corresponding value must be an array
// or object, and the integer resolves to an element of the array or to the
// value of an object member by position. Negative indices count backward from
// the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(*jparse.Value) (*jparse.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			if cur.Kind() != jparse.ObjectKind {
				return c.setErrorf(ErrWrongType, "cannot traverse %v with %q", cur.Kind(), t)
			}
			e := cur.Find(t)
			if e == nil {
				return c.setErrorf(ErrNotFound, "key %q", t)
			}
			cur = c.push(&e.Value)

		case int:
			switch cur.Kind() {
			case jparse.ArrayKind:
				i, ok := fixArrayBound(cur.Len(), t)
				if !ok {
					return c.setErrorf(ErrNotFound, "array index %d out of bounds (n=%d)", t, cur.Len())
				}
				cur = c.push(cur.Index(i))
			case jparse.ObjectKind:
				i, ok := fixArrayBound(cur.Len(), t)
				if !ok {
					return c.setErrorf(ErrNotFound, "object index %d out of bounds (n=%d)", t, cur.Len())
				}
				cur = c.push(&cur.Entries()[i].Value)
			default:
				return c.setErrorf(ErrWrongType, "cannot traverse %v with %d", cur.Kind(), t)
			}

		case func(*jparse.Value) (*jparse.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf(ErrWrongType, "invalid path element %T", elt)
		}
	}
	return c
}

// Int returns the value under the cursor as an int. It reports an error if
// the value is not a number, or is not an integer representable as an int.
func (c *Cursor) Int() (int, error) {
	f, err := c.Float()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrWrongType, f)
	}
	return int(f), nil
}

// Float returns the value under the cursor as a float64.
func (c *Cursor) Float() (float64, error) {
	v, err := c.want(jparse.NumberKind)
	if err != nil {
		return 0, err
	}
	return v.Float64(), nil
}

// Text returns the contents of the string value under the cursor.
func (c *Cursor) Text() (string, error) {
	v, err := c.want(jparse.StringKind)
	if err != nil {
		return "", err
	}
	return v.Text(), nil
}

// Bool returns the Boolean value under the cursor.
func (c *Cursor) Bool() (bool, error) {
	v, err := c.want(jparse.BoolKind)
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

// Array returns the elements of the array under the cursor.
func (c *Cursor) Array() ([]jparse.Value, error) {
	v, err := c.want(jparse.ArrayKind)
	if err != nil {
		return nil, err
	}
	return v.Elems(), nil
}

// Object returns the entries of the object under the cursor.
func (c *Cursor) Object() ([]jparse.Entry, error) {
	v, err := c.want(jparse.ObjectKind)
	if err != nil {
		return nil, err
	}
	return v.Entries(), nil
}

// IsNull reports whether the value under the cursor is null. It returns
// false if the most recent traversal failed.
func (c *Cursor) IsNull() bool { return c.err == nil && c.Value().IsNull() }

func (c *Cursor) want(k jparse.Kind) (*jparse.Value, error) {
	if c.err != nil {
		return nil, c.err
	}
	v := c.Value()
	if v.Kind() != k {
		return nil, fmt.Errorf("%w: have %v, want %v", ErrWrongType, v.Kind(), k)
	}
	return v, nil
}

func (c *Cursor) push(v *jparse.Value) *jparse.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(base error, msg string, args ...any) *Cursor {
	c.err = fmt.Errorf("%w: %s", base, fmt.Sprintf(msg, args...))
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
