// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"

	"github.com/creachadair/jparse"
	"github.com/francoispqt/gojay"
)

// A report is the outcome of checking a single input.
type report struct {
	Path     string
	Code     jparse.Code // Ok on success
	Offset   int
	Location jparse.LineCol
	Values   int    // number of values in the parsed tree
	Message  string // empty on success
}

// ok reports whether the input was parsed successfully. A report for an
// input that could not be read has an empty Code name and a Message.
func (r *report) ok() bool { return r.Code == jparse.Ok && r.Message == "" }

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (r *report) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("path", r.Path)
	enc.BoolKey("ok", r.ok())
	if r.ok() {
		enc.IntKey("values", r.Values)
		return
	}
	if r.Code != jparse.Ok {
		enc.StringKey("code", r.Code.Name())
		enc.IntKey("offset", r.Offset)
		enc.IntKey("line", r.Location.Line)
		enc.IntKey("column", r.Location.Column)
	}
	enc.StringKey("message", r.Message)
}

// IsNil implements gojay.MarshalerJSONObject.
func (r *report) IsNil() bool { return r == nil }

// write writes r to w as a single line of text or JSON.
func (r *report) write(w io.Writer, asJSON bool) error {
	if asJSON {
		data, err := gojay.MarshalJSONObject(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	var err error
	switch {
	case r.ok():
		_, err = fmt.Fprintf(w, "%s: ok (%d values)\n", r.Path, r.Values)
	case r.Code == jparse.Ok:
		_, err = fmt.Fprintf(w, "%s: error: %s\n", r.Path, r.Message)
	default:
		_, err = fmt.Fprintf(w, "%s:%s: %s: %s (offset %d)\n",
			r.Path, r.Location, r.Code.Name(), r.Message, r.Offset)
	}
	return err
}
