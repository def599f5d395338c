// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jwcc implements a parser for JSON With Commas and Comments (JWCC) as
// defined by https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
package jwcc

import (
	"bytes"
	"fmt"

	"github.com/creachadair/jparse"
	"github.com/tailscale/hujson"
)

// Parse parses data as a single JWCC value using the given options, with
// comments and trailing commas enabled. The contents of data are not
// modified.
//
// In case of error, the error has concrete type *jparse.SyntaxError, and its
// offset and location refer to data.
func Parse(data []byte, opts jparse.Options) (*jparse.Value, error) {
	opts.AllowComments = true
	opts.AllowTrailingCommas = true
	return opts.Parse(data)
}

// Standardize returns a copy of data with comments and trailing commas
// replaced by whitespace, so that the result is standard JSON with the same
// offsets as data.
func Standardize(data []byte) ([]byte, error) {
	// The hujson parser aliases its input, and standardizing rewrites the
	// aliased comment text in place.
	std, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return nil, fmt.Errorf("jwcc: %w", err)
	}
	return std, nil
}
