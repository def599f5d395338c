// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/cursor"
	"github.com/creachadair/jparse/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2.5
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  },
  "n": null
}`

func TestCursor(t *testing.T) {
	v := testutil.MustParse(t, jparse.Options{}, testJSON)
	list := v.Find("list").Value
	xyz := v.Find("xyz").Value
	two := jparse.Number(2)
	three := jparse.Number(3)

	tests := []struct {
		name string
		path []any
		want *jparse.Value
		fail error
	}{
		{"NilInput", nil, v, nil},
		{"NoMatch", []any{"nonesuch"}, v, cursor.ErrNotFound},
		{"WrongType", []any{11.5}, v, cursor.ErrWrongType},
		{"NotObject", []any{"list", "x"}, &list, cursor.ErrWrongType},

		{"ArrayPos", []any{"list", 1}, list.Index(1), nil},
		{"ArrayNeg", []any{"list", -1}, list.Index(1), nil},
		{"ArrayRange", []any{"o", 25}, &v.Find("o").Value, cursor.ErrNotFound},
		{"ObjPath", []any{"xyz", "d"}, &xyz.Find("d").Value, nil},
		{"ObjIndex", []any{"xyz", -1}, &xyz.Find("q").Value, nil},

		{"FuncArray", []any{"o", testPathFunc}, &two, nil},
		{"FuncObj", []any{"xyz", testPathFunc}, &three, nil},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, &xyz.Find("d").Value, errNoLength},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if tc.fail != nil {
				if !errors.Is(err, tc.fail) {
					t.Fatalf("Down %+v: got error %v, want %v", tc.path, err, tc.fail)
				}
				t.Logf("Got expected error: %v", err)
			} else if err != nil {
				t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
			}
			if diff := testutil.Diff(tc.want, c.Value()); diff != "" {
				t.Errorf("Down %+v: wrong result (-want, +got):\n%s", tc.path, diff)
			}
		})
	}
}

var errNoLength = errors.New("not a thing with length")

func testPathFunc(v *jparse.Value) (*jparse.Value, error) {
	switch v.Kind() {
	case jparse.ArrayKind, jparse.ObjectKind:
		n := jparse.Number(float64(v.Len()))
		return &n, nil
	default:
		return nil, errNoLength
	}
}

func TestNavigation(t *testing.T) {
	v := testutil.MustParse(t, jparse.Options{}, testJSON)
	c := cursor.New(v)
	if !c.AtOrigin() || c.Origin() != v {
		t.Fatal("New cursor is not at its origin")
	}

	c.Down("list", 0, "x")
	if err := c.Err(); err != nil {
		t.Fatalf("Down: unexpected error: %v", err)
	}
	var kinds []jparse.Kind
	for _, p := range c.Path() {
		kinds = append(kinds, p.Kind())
	}
	if diff := cmp.Diff([]jparse.Kind{
		jparse.ObjectKind, jparse.ArrayKind, jparse.ObjectKind, jparse.NumberKind,
	}, kinds); diff != "" {
		t.Errorf("Path kinds (-want, +got):\n%s", diff)
	}

	if c.Up().Up().Value().Kind() != jparse.ArrayKind {
		t.Errorf("After Up: got %v, want array", c.Value().Kind())
	}
	c.Down(1, "x")
	if f, err := c.Float(); err != nil || f != 2.5 {
		t.Errorf("Float: got (%v, %v), want 2.5", f, err)
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got nil error, want failure")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Error("Reset did not return to the origin")
	}
	c.Up() // no effect at the origin
	if !c.AtOrigin() {
		t.Error("Up moved past the origin")
	}
}

func TestAccessors(t *testing.T) {
	v := testutil.MustParse(t, jparse.Options{}, testJSON)

	get := func(path ...any) *cursor.Cursor { return cursor.New(v).Down(path...) }

	if n, err := get("list", 0, "x").Int(); err != nil || n != 1 {
		t.Errorf("Int: got (%v, %v), want 1", n, err)
	}
	if _, err := get("list", 1, "x").Int(); !errors.Is(err, cursor.ErrWrongType) {
		t.Errorf("Int of 2.5: got %v, want %v", err, cursor.ErrWrongType)
	}
	if s, err := get("y", "hello").Text(); err != nil || s != "there" {
		t.Errorf("Text: got (%q, %v), want there", s, err)
	}
	if _, err := get("y").Text(); !errors.Is(err, cursor.ErrWrongType) {
		t.Errorf("Text of object: got %v, want %v", err, cursor.ErrWrongType)
	}
	if b, err := get("xyz", "p").Bool(); err != nil || !b {
		t.Errorf("Bool: got (%v, %v), want true", b, err)
	}
	if elts, err := get("o").Array(); err != nil || len(elts) != 2 {
		t.Errorf("Array: got (%v, %v), want 2 elements", elts, err)
	}
	if es, err := get("xyz").Object(); err != nil || len(es) != 3 {
		t.Errorf("Object: got (%v, %v), want 3 entries", es, err)
	}
	if !get("n").IsNull() {
		t.Error("IsNull: got false, want true")
	}
	if get("nonesuch").IsNull() {
		t.Error("IsNull after failure: got true, want false")
	}
	if _, err := get("nonesuch").Float(); !errors.Is(err, cursor.ErrNotFound) {
		t.Errorf("Float after failure: got %v, want %v", err, cursor.ErrNotFound)
	}

	got, err := cursor.Path(v, "o", -2)
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	}
	if got.Text() != "hi" {
		t.Errorf("Path: got %v, want hi", got)
	}
}
