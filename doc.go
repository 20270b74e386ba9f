// Copyright (C) 2024 The jot Authors. All Rights Reserved.

// Package jot implements a hand-written JSON lexer.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := jot.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Kind())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input. Lexical errors have
// concrete type [*LexError] and wrap one of the sentinel errors
// [ErrUnexpectedChar], [ErrInvalidNumber], or [ErrInvalidKeyword].
//
// # Tokenizing
//
// Tokenize materializes the whole token stream of an input, decoding string
// escapes and number literals along the way:
//
//	toks, err := jot.Tokenize(input)
//
// The resulting slice is what the parser in the ast subpackage consumes.
// There is no end-of-input token; consumers are expected to bounds-check
// against the slice length.
//
// # Grammar
//
// The accepted grammar is deliberately smaller than RFC 8259: numbers have
// no exponent part, and comments are not recognized. String escapes are
// decoded in full, including \uXXXX sequences and surrogate pairs.
package jot
