// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape decodes the backslash escapes of JSON strings.
package escape

import (
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var simpleEsc = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Simple reports the byte denoted by the single-character escape \c, and
// whether c is a single-character escape at all. The \u escape is not
// included.
func Simple(c byte) (byte, bool) {
	if int(c) < len(simpleEsc) {
		if b := simpleEsc[c]; b != 0 {
			return b, true
		}
	}
	return 0, false
}

// Hex4 decodes the four hexadecimal digits at the front of src as a UTF-16
// code unit. It reports false if src has fewer than four bytes or any of
// them is not a hex digit.
func Hex4(src mem.RO) (rune, bool) {
	if src.Len() < 4 {
		return 0, false
	}
	var v rune
	for i := range 4 {
		d, ok := hexValue(src.At(i))
		if !ok {
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

func hexValue(b byte) (rune, bool) {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0'), true
	case 'a' <= b && b <= 'f':
		return rune(b-'a') + 10, true
	case 'A' <= b && b <= 'F':
		return rune(b-'A') + 10, true
	}
	return 0, false
}

// IsHighSurrogate reports whether u is the first half of a surrogate pair.
func IsHighSurrogate(u rune) bool { return 0xD800 <= u && u < 0xDC00 }

// IsLowSurrogate reports whether u is the second half of a surrogate pair.
func IsLowSurrogate(u rune) bool { return 0xDC00 <= u && u < 0xE000 }

// EncodeUnit writes the UTF-8 form of the UTF-16 code unit u into buf and
// returns the number of bytes written. Surrogate units are encoded on their
// own as three-byte sequences, which are not valid UTF-8.
// The buffer must have room for at least 3 bytes.
func EncodeUnit(buf []byte, u rune) int {
	switch {
	case u < 0x80:
		buf[0] = byte(u)
		return 1
	case u < 0x800:
		buf[0] = 0xC0 | byte(u>>6)
		buf[1] = 0x80 | byte(u&0x3F)
		return 2
	default:
		buf[0] = 0xE0 | byte(u>>12)
		buf[1] = 0x80 | byte(u>>6&0x3F)
		buf[2] = 0x80 | byte(u&0x3F)
		return 3
	}
}

// EncodePair writes the UTF-8 form of the code point denoted by the
// surrogate pair hi, lo into buf and returns the number of bytes written.
// The buffer must have room for at least utf8.UTFMax bytes.
func EncodePair(buf []byte, hi, lo rune) int {
	return utf8.EncodeRune(buf, utf16.DecodeRune(hi, lo))
}
