// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
)

// Code is the outcome of a parse: Ok, or one of the negative codes naming a
// syntax violation or resource failure. A Code other than Ok is also an
// error, so callers may test for a specific code with errors.Is.
type Code int

// Constants defining the valid Code values.
const (
	Ok                        Code = -iota // success
	FailedAllocation                       // a buffer could not grow
	InvalidValue                           // no value starts here
	StringInvalidEscape                    // unknown \-escape in a string
	StringInvalidEscapeDigits              // \u not followed by four hex digits
	StringEndNotFound                      // unterminated string
	ObjectUnexpectedEnd                    // "}" after a trailing comma
	ObjectUnexpectedValue                  // member not preceded by a comma
	ObjectMissingColon                     // no ":" after an object key
	ObjectEndNotFound                      // unterminated object
	ArrayUnexpectedEnd                     // "]" after a trailing comma
	ArrayUnexpectedValue                   // element not preceded by a comma
	ArrayEndNotFound                       // unterminated array
	NumberInvalid                          // malformed number
	NumberInvalidDecimal                   // no digits after a decimal point
	NumberInvalidExponent                  // no digits in an exponent
	TrailingData                           // input remains after the value
	DepthExceeded                          // nesting exceeds the depth limit
)

var codeStr = [...]string{
	-Ok:                        "ok",
	-FailedAllocation:          "allocation failed",
	-InvalidValue:              "invalid value",
	-StringInvalidEscape:       "invalid escape in string",
	-StringInvalidEscapeDigits: "invalid digits in Unicode escape",
	-StringEndNotFound:         "end of string not found",
	-ObjectUnexpectedEnd:       "unexpected end of object after comma",
	-ObjectUnexpectedValue:     "unexpected value in object, missing comma",
	-ObjectMissingColon:        "missing colon after object key",
	-ObjectEndNotFound:         "end of object not found",
	-ArrayUnexpectedEnd:        "unexpected end of array after comma",
	-ArrayUnexpectedValue:      "unexpected value in array, missing comma",
	-ArrayEndNotFound:          "end of array not found",
	-NumberInvalid:             "invalid number",
	-NumberInvalidDecimal:      "invalid decimal part of number",
	-NumberInvalidExponent:     "invalid exponent of number",
	-TrailingData:              "unexpected data after value",
	-DepthExceeded:             "nesting depth exceeded",
}

var codeName = [...]string{
	-Ok:                        "Ok",
	-FailedAllocation:          "FailedAllocation",
	-InvalidValue:              "InvalidValue",
	-StringInvalidEscape:       "StringInvalidEscape",
	-StringInvalidEscapeDigits: "StringInvalidEscapeDigits",
	-StringEndNotFound:         "StringEndNotFound",
	-ObjectUnexpectedEnd:       "ObjectUnexpectedEnd",
	-ObjectUnexpectedValue:     "ObjectUnexpectedValue",
	-ObjectMissingColon:        "ObjectMissingColon",
	-ObjectEndNotFound:         "ObjectEndNotFound",
	-ArrayUnexpectedEnd:        "ArrayUnexpectedEnd",
	-ArrayUnexpectedValue:      "ArrayUnexpectedValue",
	-ArrayEndNotFound:          "ArrayEndNotFound",
	-NumberInvalid:             "NumberInvalid",
	-NumberInvalidDecimal:      "NumberInvalidDecimal",
	-NumberInvalidExponent:     "NumberInvalidExponent",
	-TrailingData:              "TrailingData",
	-DepthExceeded:             "DepthExceeded",
}

func (c Code) valid() bool { return c <= Ok && int(-c) < len(codeStr) }

// String returns a human-readable description of c.
func (c Code) String() string {
	if !c.valid() {
		return fmt.Sprintf("unknown code %d", int(c))
	}
	return codeStr[-c]
}

// Name returns the identifier of c, for example "TrailingData".
func (c Code) Name() string {
	if !c.valid() {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return codeName[-c]
}

// Error satisfies the error interface.
func (c Code) Error() string { return c.String() }

// CodeOf reports the Code carried by err. It returns Ok if err == nil, and
// InvalidValue for an error that does not carry a Code.
func CodeOf(err error) Code {
	if err == nil {
		return Ok
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return InvalidValue
}

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Code     Code    // what went wrong
	Offset   int     // byte offset where the problem was detected
	Location LineCol // line and column of Offset
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s (offset %d)", e.Location, e.Code, e.Offset)
}

// Unwrap supports error wrapping. It returns the Code of e.
func (e *SyntaxError) Unwrap() error { return e.Code }
