// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"github.com/creachadair/jparse/internal/growbuf"
	"go4.org/mem"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is unset.
const DefaultMaxDepth = 10000

// Options control the behavior of the parser. The zero value is ready for
// use and gives the default behavior of Parse.
type Options struct {
	// MaxDepth is the maximum number of arrays and objects that may be open
	// at once. Deeper input fails with DepthExceeded. If MaxDepth ≤ 0,
	// DefaultMaxDepth is used.
	MaxDepth int

	// MaxElements, if positive, limits the number of elements of each array
	// and the number of entries of each object. A container that would
	// exceed it fails with FailedAllocation.
	MaxElements int

	// MaxStringBytes, if positive, limits the decoded length in bytes of
	// each string, including object keys. A longer string fails with
	// FailedAllocation.
	MaxStringBytes int

	// CombineSurrogates, if true, decodes a \u escape for a high surrogate
	// that is immediately followed by a \u escape for a low surrogate as a
	// single code point. Otherwise, and for unpaired surrogates, each
	// surrogate is encoded on its own as a three-byte sequence.
	CombineSurrogates bool

	// AllowComments, if true, treats "//" line comments and "/* */" block
	// comments as whitespace. A comment that is not terminated is not
	// skipped, so the parse fails at the offset where it begins.
	AllowComments bool

	// AllowTrailingCommas, if true, accepts a comma after the last element
	// of a non-empty array or the last member of a non-empty object.
	AllowTrailingCommas bool
}

// Parse parses data as a single JSON value, using default options.
// See Options.Parse.
func Parse(data []byte) (*Value, error) { return Options{}.Parse(data) }

// ParseString parses s as a single JSON value, using default options.
func ParseString(s string) (*Value, error) { return Options{}.parse(mem.S(s)) }

// MustParse parses s as a single JSON value, and panics if parsing fails.
// It is intended for values known to be valid, such as literals in tests.
func MustParse(s string) *Value {
	v, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse parses data as a single JSON value, optionally surrounded by
// whitespace. On success, it returns the value and nil. Otherwise it
// returns nil and an error of concrete type *SyntaxError, whose Code
// describes the first problem encountered.
//
// The returned value does not alias data.
func (o Options) Parse(data []byte) (*Value, error) { return o.parse(mem.B(data)) }

func (o Options) parse(src mem.RO) (*Value, error) {
	p := &parser{src: src, opts: o}
	if p.opts.MaxDepth <= 0 {
		p.opts.MaxDepth = DefaultMaxDepth
	}

	v := new(Value)
	pos, code := p.parseValue(p.skipSpace(0), v)
	if code == Ok {
		if pos = p.skipSpace(pos); pos < src.Len() {
			code = TrailingData
		}
	}
	if code != Ok {
		v.Release()
		return nil, &SyntaxError{Code: code, Offset: pos, Location: locate(src, pos)}
	}
	return v, nil
}

// A parser holds the state of a single parse.
//
// Each parse method takes the offset where its grammar phrase begins and
// returns the offset just past the end of the phrase and Ok, or the offset
// where a problem was detected and a non-Ok code. On failure, the value a
// method was filling may be partially built; the caller is responsible for
// releasing it.
type parser struct {
	src   mem.RO
	opts  Options
	depth int
}

func (p *parser) more(pos int) bool { return pos < p.src.Len() }

// skipSpace returns the offset of the first non-whitespace byte at or after
// pos, or the length of the input if there is none. Comments count as
// whitespace if they are enabled.
func (p *parser) skipSpace(pos int) int {
	for pos < p.src.Len() {
		if isSpace(p.src.At(pos)) {
			pos++
		} else if end, ok := p.skipComment(pos); ok {
			pos = end
		} else {
			break
		}
	}
	return pos
}

var (
	lineComment = mem.S("//")
	blockOpen   = mem.S("/*")
	blockClose  = mem.S("*/")
)

// skipComment reports whether a complete comment begins at pos, and if so
// returns the offset just past its end.
func (p *parser) skipComment(pos int) (int, bool) {
	if !p.opts.AllowComments || p.src.At(pos) != '/' {
		return pos, false
	}
	rest := p.src.SliceFrom(pos)
	switch {
	case mem.HasPrefix(rest, lineComment):
		if i := mem.IndexByte(rest, '\n'); i >= 0 {
			return pos + i + 1, true
		}
		return p.src.Len(), true // a line comment may end the input
	case mem.HasPrefix(rest, blockOpen):
		if i := mem.Index(rest.SliceFrom(2), blockClose); i >= 0 {
			return pos + 2 + i + 2, true
		}
	}
	return pos, false
}

// parseValue parses a value of any kind into v.
// Precondition: pos is not at whitespace.
func (p *parser) parseValue(pos int, v *Value) (int, Code) {
	*v = Value{} // null, in case parsing stops partway
	if !p.more(pos) {
		return pos, InvalidValue
	}
	switch ch := p.src.At(pos); ch {
	case '{':
		return p.parseObject(pos, v)
	case '[':
		return p.parseArray(pos, v)
	case '"':
		return p.parseString(pos, v)
	case 't':
		return p.parseLiteral(pos, v, litTrue, Bool(true))
	case 'f':
		return p.parseLiteral(pos, v, litFalse, Bool(false))
	case 'n':
		return p.parseLiteral(pos, v, litNull, Null())
	default:
		if ch == '-' || isDigit(ch) {
			return p.parseNumber(pos, v)
		}
		return pos, InvalidValue
	}
}

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// parseLiteral matches the constant lit at pos, and if it matches, stores
// val into v.
func (p *parser) parseLiteral(pos int, v *Value, lit mem.RO, val Value) (int, Code) {
	if !mem.HasPrefix(p.src.SliceFrom(pos), lit) {
		return pos, InvalidValue
	}
	*v = val
	return pos + lit.Len(), Ok
}

// enter records the start of a nested array or object.
func (p *parser) enter() bool {
	p.depth++
	return p.depth <= p.opts.MaxDepth
}

func (p *parser) leave() { p.depth-- }

// parseArray parses an array into v.
// Precondition: the byte at pos is "[".
func (p *parser) parseArray(pos int, v *Value) (int, Code) {
	if !p.enter() {
		return pos, DepthExceeded
	}
	defer p.leave()

	elts := growbuf.New[Value](p.opts.MaxElements)
	v.kind = ArrayKind
	pos++ // skip "["

	var first, comma = true, true
	for {
		pos = p.skipSpace(pos)
		if !p.more(pos) {
			v.arr = elts.Items()
			return pos, ArrayEndNotFound
		}
		if p.src.At(pos) == ']' {
			if comma && !first && !p.opts.AllowTrailingCommas {
				v.arr = elts.Items()
				return pos, ArrayUnexpectedEnd
			}
			pos++
			break
		} else if !comma {
			v.arr = elts.Items()
			return pos, ArrayUnexpectedValue
		}

		if err := elts.Append(Value{}); err != nil {
			v.arr = nil
			return pos, FailedAllocation
		}
		// Expose the elements so far to the caller, so that a failure in the
		// new element leaves everything reachable for release.
		v.arr = elts.Items()

		next, code := p.parseValue(pos, elts.Last())
		if code != Ok {
			return next, code
		}
		first, comma = false, false
		if pos = p.skipSpace(next); p.more(pos) && p.src.At(pos) == ',' {
			comma = true
			pos++
		}
	}
	elts.Shrink()
	v.arr = elts.Items()
	return pos, Ok
}

// parseObject parses an object into v.
// Precondition: the byte at pos is "{".
func (p *parser) parseObject(pos int, v *Value) (int, Code) {
	if !p.enter() {
		return pos, DepthExceeded
	}
	defer p.leave()

	ents := growbuf.New[Entry](p.opts.MaxElements)
	v.kind = ObjectKind
	pos++ // skip "{"

	var first, comma = true, true
	for {
		pos = p.skipSpace(pos)
		if !p.more(pos) {
			v.obj = ents.Items()
			return pos, ObjectEndNotFound
		}
		if p.src.At(pos) == '}' {
			if comma && !first && !p.opts.AllowTrailingCommas {
				v.obj = ents.Items()
				return pos, ObjectUnexpectedEnd
			}
			pos++
			break
		} else if !comma {
			v.obj = ents.Items()
			return pos, ObjectUnexpectedValue
		}

		if err := ents.Append(Entry{}); err != nil {
			v.obj = nil
			return pos, FailedAllocation
		}
		v.obj = ents.Items()

		next, code := p.parseMember(pos, ents.Last())
		if code != Ok {
			return next, code
		}
		first, comma = false, false
		if pos = p.skipSpace(next); p.more(pos) && p.src.At(pos) == ',' {
			comma = true
			pos++
		}
	}
	ents.Shrink()
	v.obj = ents.Items()
	return pos, Ok
}

// parseMember parses a single "key": value member of an object into e.
func (p *parser) parseMember(pos int, e *Entry) (int, Code) {
	if p.src.At(pos) != '"' {
		return pos, InvalidValue
	}
	var key Value
	pos, code := p.parseString(pos, &key)
	if code != Ok {
		return pos, code
	}
	e.Key = key.str

	pos = p.skipSpace(pos)
	if !p.more(pos) {
		return pos, ObjectEndNotFound
	} else if p.src.At(pos) != ':' {
		return pos, ObjectMissingColon
	}
	pos = p.skipSpace(pos + 1)
	if !p.more(pos) {
		return pos, ObjectEndNotFound
	}
	return p.parseValue(pos, &e.Value)
}

func isSpace(ch byte) bool         { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }
func isDigit(ch byte) bool         { return '0' <= ch && ch <= '9' }
func isPositiveDigit(ch byte) bool { return '1' <= ch && ch <= '9' }
