// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"strconv"

	"go4.org/mem"
)

// parseNumber parses a numeric literal into v.
// Precondition: the byte at pos is "-" or a digit.
//
// The literal is checked against the JSON number grammar before conversion:
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
func (p *parser) parseNumber(pos int, v *Value) (int, Code) {
	start := pos
	if p.src.At(pos) == '-' {
		pos++
	}

	// Integer part: a lone zero, or a nonzero digit followed by any digits.
	if !p.more(pos) || !isDigit(p.src.At(pos)) {
		return pos, NumberInvalid
	}
	if isPositiveDigit(p.src.At(pos)) {
		pos = p.skipDigits(pos + 1)
	} else {
		pos++ // leading zero
	}

	// Optional fraction.
	if p.more(pos) && p.src.At(pos) == '.' {
		pos++
		if !p.more(pos) || !isDigit(p.src.At(pos)) {
			return pos, NumberInvalidDecimal
		}
		pos = p.skipDigits(pos)
	}

	// Optional exponent.
	if p.more(pos) && (p.src.At(pos) == 'e' || p.src.At(pos) == 'E') {
		pos++
		if p.more(pos) && (p.src.At(pos) == '+' || p.src.At(pos) == '-') {
			pos++
		}
		if !p.more(pos) || !isDigit(p.src.At(pos)) {
			return pos, NumberInvalidExponent
		}
		pos = p.skipDigits(pos)
	}

	// The conversion does not depend on locale. Values too large in magnitude
	// for a float64 convert to ±Inf without error.
	f, err := mem.ParseFloat(p.src.Slice(start, pos), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return start, NumberInvalid
	}
	*v = Number(f)
	return pos, Ok
}

func (p *parser) skipDigits(pos int) int {
	for p.more(pos) && isDigit(p.src.At(pos)) {
		pos++
	}
	return pos
}
