// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"unicode/utf8"

	"github.com/creachadair/jparse/internal/escape"
	"github.com/creachadair/jparse/internal/growbuf"
)

// parseString parses a quoted string into v, resolving escape sequences.
// Precondition: the byte at pos is `"`.
func (p *parser) parseString(pos int, v *Value) (int, Code) {
	buf := growbuf.New[byte](p.opts.MaxStringBytes)
	put := func(bs ...byte) Code {
		for _, b := range bs {
			if buf.Append(b) != nil {
				return FailedAllocation
			}
		}
		return Ok
	}

	pos++ // skip the open quote
	for {
		if !p.more(pos) {
			return pos, StringEndNotFound
		}
		ch := p.src.At(pos)
		if ch == '"' {
			pos++
			break
		} else if ch != '\\' {
			if code := put(ch); code != Ok {
				return pos, code
			}
			pos++
			continue
		}

		// We have a backslash; decode the escape it begins.
		pos++
		if !p.more(pos) {
			return pos, StringEndNotFound
		}
		esc := p.src.At(pos)
		if b, ok := escape.Simple(esc); ok {
			if code := put(b); code != Ok {
				return pos, code
			}
			pos++
			continue
		} else if esc != 'u' {
			return pos, StringInvalidEscape
		}

		unit, ok := escape.Hex4(p.src.SliceFrom(pos + 1))
		if !ok {
			return pos, StringInvalidEscapeDigits
		}
		pos += 5 // u + 4 digits

		var enc [utf8.UTFMax]byte
		n := escape.EncodeUnit(enc[:], unit)
		if p.opts.CombineSurrogates && escape.IsHighSurrogate(unit) {
			if lo, ok := p.lowSurrogateAt(pos); ok {
				n = escape.EncodePair(enc[:], unit, lo)
				pos += 6
			}
		}
		if code := put(enc[:n]...); code != Ok {
			return pos, code
		}
	}

	buf.Shrink()
	*v = Value{kind: StringKind, str: buf.Items()}
	return pos, Ok
}

// lowSurrogateAt reports whether the input at pos is a \u escape for a low
// surrogate, and if so returns its value.
func (p *parser) lowSurrogateAt(pos int) (rune, bool) {
	if pos+1 >= p.src.Len() || p.src.At(pos) != '\\' || p.src.At(pos+1) != 'u' {
		return 0, false
	}
	lo, ok := escape.Hex4(p.src.SliceFrom(pos + 2))
	return lo, ok && escape.IsLowSurrogate(lo)
}
