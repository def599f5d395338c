// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a JSON parser that builds an in-memory tree of
// values.
//
// # Parsing
//
// Parse and ParseString parse a complete buffer holding a single JSON value,
// optionally surrounded by whitespace:
//
//	v, err := jparse.Parse(data)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	defer v.Release()
//
// The parser is a single-pass recursive descent. The first problem found
// stops the parse; no partial result is returned. Errors have concrete type
// *jparse.SyntaxError, which reports a Code naming the problem and the
// offset where it was found:
//
//	if errors.Is(err, jparse.TrailingData) {
//	   log.Print("Extra input after the value")
//	}
//
// Use an Options value to limit nesting depth, container and string sizes,
// to combine UTF-16 surrogate pairs, or to accept comments and trailing
// commas:
//
//	opts := jparse.Options{MaxDepth: 64, CombineSurrogates: true}
//	v, err := opts.Parse(data)
//
// # Values
//
// A Value is a tagged union over the JSON types:
//
//	JSON type  | Kind        | Accessors
//	---------- | ----------- | ---------------------------------------
//	object     | ObjectKind  | Entries, Find, FindLast, FindAll, Len
//	array      | ArrayKind   | Elems, Index, Len
//	string     | StringKind  | Bytes, Text, Len
//	number     | NumberKind  | Float64
//	true/false | BoolKind    | Bool
//	null       | NullKind    | IsNull
//
// The zero Value is null. Objects keep their entries in input order, and
// duplicate keys are preserved; Find resolves a key to its first occurrence.
// Numbers are stored as float64, so integers beyond 2^53 lose precision.
//
// A parsed Value owns its entire subtree. Release discards the tree and
// leaves the value null; calling it again has no effect.
package jparse
