// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"bytes"
	"fmt"
)

// Kind identifies which variant of a JSON value a Value holds.
type Kind byte

// Constants defining the valid Kind values. The zero Kind is NullKind, so a
// zero Value is a valid null.
const (
	NullKind   Kind = iota // null
	ObjectKind             // {...}
	ArrayKind              // [...]
	StringKind             // "..."
	NumberKind             // integer or floating-point number
	BoolKind               // true or false
)

var kindStr = [...]string{
	NullKind:   "null",
	ObjectKind: "object",
	ArrayKind:  "array",
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "bool",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// A Value is a single JSON value: exactly one of an object, array, string,
// number, Boolean, or null. The zero Value is null.
//
// A Value returned by the parser owns its entire subtree. Object and array
// values hold their children directly; nothing in the tree is shared.
type Value struct {
	kind Kind
	num  float64
	flag bool
	str  []byte
	arr  []Value
	obj  []Entry
}

// An Entry is a single key-value member of an object.
// An object may contain several entries with the same key.
type Entry struct {
	Key   []byte
	Value Value
}

// Field constructs an object entry with the given key and value.
func Field(key string, v Value) Entry { return Entry{Key: []byte(key), Value: v} }

// Null returns a null value.
func Null() Value { return Value{} }

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{kind: BoolKind, flag: b} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: NumberKind, num: f} }

// String returns a string value with the bytes of s.
func String(s string) Value { return Value{kind: StringKind, str: []byte(s)} }

// Array returns an array value with the given elements.
func Array(elts ...Value) Value { return Value{kind: ArrayKind, arr: elts} }

// Object returns an object value with the given entries, in order.
func Object(entries ...Entry) Value { return Value{kind: ObjectKind, obj: entries} }

// Kind reports which variant v holds.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v.kind == NullKind }

// Bool returns the value of a Boolean. It returns false if v is not a
// Boolean.
func (v *Value) Bool() bool { return v.kind == BoolKind && v.flag }

// Float64 returns the value of a number. It returns 0 if v is not a number.
func (v *Value) Float64() float64 {
	if v.kind != NumberKind {
		return 0
	}
	return v.num
}

// Bytes returns the decoded contents of a string. The result aliases the
// storage of v and must not be modified. It returns nil if v is not a
// string.
func (v *Value) Bytes() []byte {
	if v.kind != StringKind {
		return nil
	}
	return v.str
}

// Text returns a copy of the decoded contents of a string. It returns "" if
// v is not a string.
func (v *Value) Text() string { return string(v.Bytes()) }

// Len reports the number of elements of an array, the number of entries of
// an object, or the length in bytes of a string. It returns 0 for other
// kinds.
func (v *Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arr)
	case ObjectKind:
		return len(v.obj)
	case StringKind:
		return len(v.str)
	}
	return 0
}

// Elems returns the elements of an array, or nil if v is not an array.
func (v *Value) Elems() []Value {
	if v.kind != ArrayKind {
		return nil
	}
	return v.arr
}

// Index returns a pointer to the ith element of an array, or nil if v is
// not an array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v.kind != ArrayKind || i < 0 || i >= len(v.arr) {
		return nil
	}
	return &v.arr[i]
}

// Entries returns the entries of an object in input order, or nil if v is
// not an object.
func (v *Value) Entries() []Entry {
	if v.kind != ObjectKind {
		return nil
	}
	return v.obj
}

// Find returns the first entry of an object with the given key, or nil.
// When an object has duplicate keys, Find resolves to the earliest one.
func (v *Value) Find(key string) *Entry {
	for i, e := range v.Entries() {
		if string(e.Key) == key {
			return &v.obj[i]
		}
	}
	return nil
}

// FindLast returns the last entry of an object with the given key, or nil.
func (v *Value) FindLast(key string) *Entry {
	es := v.Entries()
	for i := len(es) - 1; i >= 0; i-- {
		if string(es[i].Key) == key {
			return &v.obj[i]
		}
	}
	return nil
}

// FindAll returns all the entries of an object with the given key, in
// input order.
func (v *Value) FindAll(key string) []*Entry {
	var out []*Entry
	for i, e := range v.Entries() {
		if string(e.Key) == key {
			out = append(out, &v.obj[i])
		}
	}
	return out
}

// Walk calls f for v and each value nested within it, in depth-first
// preorder. If f returns false, the children of that value are skipped.
func (v *Value) Walk(f func(*Value) bool) {
	if !f(v) {
		return
	}
	switch v.kind {
	case ArrayKind:
		for i := range v.arr {
			v.arr[i].Walk(f)
		}
	case ObjectKind:
		for i := range v.obj {
			v.obj[i].Value.Walk(f)
		}
	}
}

// Equal reports whether v and w have the same structure and contents.
// Object entries are compared in order, including duplicates.
func (v *Value) Equal(w *Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case NullKind:
		return true
	case BoolKind:
		return v.flag == w.flag
	case NumberKind:
		return v.num == w.num
	case StringKind:
		return bytes.Equal(v.str, w.str)
	case ArrayKind:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(&w.arr[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for i := range v.obj {
			if !bytes.Equal(v.obj[i].Key, w.obj[i].Key) || !v.obj[i].Value.Equal(&w.obj[i].Value) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unknown kind %v", v.kind))
	}
}

// Release discards the contents of v and everything nested within it, and
// leaves v as null. Releasing a null value, including one already released,
// does nothing.
func (v *Value) Release() {
	switch v.kind {
	case ObjectKind:
		for i := range v.obj {
			v.obj[i].Key = nil
			v.obj[i].Value.Release()
		}
	case ArrayKind:
		for i := range v.arr {
			v.arr[i].Release()
		}
	}
	*v = Value{}
}

// String returns a brief description of v for diagnostics.
func (v *Value) String() string {
	switch v.kind {
	case ObjectKind:
		return fmt.Sprintf("Object(len=%d)", len(v.obj))
	case ArrayKind:
		return fmt.Sprintf("Array(len=%d)", len(v.arr))
	case StringKind:
		return fmt.Sprintf("String(%q)", v.str)
	case NumberKind:
		return fmt.Sprintf("Number(%v)", v.num)
	case BoolKind:
		return fmt.Sprintf("Bool(%v)", v.flag)
	default:
		return "Null"
	}
}
