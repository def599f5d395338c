// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import "go4.org/mem"

// Unquote decodes a single JSON string literal, including its enclosing
// double quotation marks. Escape sequences are replaced with their unescaped
// equivalents, following the same rules as the parser with default options.
//
// In case of error, the error has concrete type *SyntaxError. If src does
// not begin with a quotation mark, its code is InvalidValue; if anything
// follows the closing quotation mark, its code is TrailingData.
func Unquote(src string) ([]byte, error) {
	in := mem.S(src)
	p := &parser{src: in}
	fail := func(pos int, code Code) error {
		return &SyntaxError{Code: code, Offset: pos, Location: locate(in, pos)}
	}
	if in.Len() == 0 || in.At(0) != '"' {
		return nil, fail(0, InvalidValue)
	}
	var v Value
	end, code := p.parseString(0, &v)
	if code != Ok {
		return nil, fail(end, code)
	} else if end != in.Len() {
		return nil, fail(end, TrailingData)
	}
	if v.str == nil {
		return []byte{}, nil
	}
	return v.str, nil
}
