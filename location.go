package jparse

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// locate reports the line and column of offset pos in src.
// Offsets past the end of src are clamped to the end.
func locate(src mem.RO, pos int) LineCol {
	pos = min(pos, src.Len())
	lc := LineCol{Line: 1}
	start := 0
	for {
		i := mem.IndexByte(src.Slice(start, pos), '\n')
		if i < 0 {
			break
		}
		lc.Line++
		start += i + 1
	}
	lc.Column = pos - start
	return lc
}
