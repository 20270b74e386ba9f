// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/arbelos/jot"
)

// Sentinel errors wrapped by syntax errors from the parser. Use errors.Is
// to check which kind of structural failure occurred.
var (
	ErrEmptyInput           = errors.New("empty input")
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrExpectedKey          = errors.New("expected string key")
	ErrExpectedColon        = errors.New("expected colon after key")
	ErrExpectedCommaOrClose = errors.New("expected comma or closing bracket")
	ErrTrailingInput        = errors.New("trailing input after value")
	ErrTooDeep              = errors.New("nesting depth exceeded")
)

// SyntaxError is the concrete type of structural errors reported by the
// parser. It wraps one of the sentinel errors above.
type SyntaxError struct {
	Location jot.LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// DefaultMaxDepth is the container nesting bound applied when
// Parser.MaxDepth is zero.
const DefaultMaxDepth = 512

// A Parser parses JSON documents into values. A zero Parser is ready for
// use with default settings.
type Parser struct {
	// MaxDepth bounds the nesting depth of arrays and objects. Inputs
	// nested more deeply fail with ErrTooDeep. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses a single JSON document from r with default settings.
//
// The whole input must comprise exactly one value: an empty input fails
// with ErrEmptyInput, and any tokens remaining after the first value fail
// with ErrTrailingInput.
func Parse(r io.Reader) (Value, error) {
	var p Parser
	return p.Parse(r)
}

// ParseString parses a single JSON document from s with default settings.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// Parse parses a single JSON document from r using the settings from p.
func (p Parser) Parse(r io.Reader) (Value, error) {
	toks, err := jot.Tokenize(r)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, &SyntaxError{
			Location: jot.LineCol{Line: 1, Column: 0},
			Message:  "empty input",
			err:      ErrEmptyInput,
		}
	}
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	st := &state{toks: toks, maxDepth: maxDepth}
	v, err := st.parseValue()
	if err != nil {
		return nil, err
	}
	if st.pos < len(st.toks) {
		tok := st.toks[st.pos]
		return nil, st.errAt(tok, ErrTrailingInput, "unexpected %v after value", tok.Kind)
	}
	return v, nil
}

// state carries the token sequence and read cursor for one parse. The
// cursor is monotonically non-decreasing and never exceeds the token count.
type state struct {
	toks     []jot.Token
	pos      int
	depth    int
	maxDepth int
}

// peek returns the token at the cursor without advancing.
func (s *state) peek() (jot.Token, error) {
	if s.pos >= len(s.toks) {
		return jot.Token{}, s.eofErr()
	}
	return s.toks[s.pos], nil
}

// consume returns the token at the cursor and advances the cursor by one.
func (s *state) consume() (jot.Token, error) {
	tok, err := s.peek()
	if err == nil {
		s.pos++
	}
	return tok, err
}

func (s *state) parseValue() (Value, error) {
	tok, err := s.peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case jot.Null:
		s.pos++
		return Null{}, nil
	case jot.True:
		s.pos++
		return Bool(true), nil
	case jot.False:
		s.pos++
		return Bool(false), nil
	case jot.Number:
		s.pos++
		return Number(tok.Num), nil
	case jot.String:
		s.pos++
		return String(tok.Text), nil
	case jot.LSquare:
		return s.parseArray()
	case jot.LBrace:
		return s.parseObject()
	default:
		return nil, s.errAt(tok, ErrUnexpectedToken, "unexpected %v", tok.Kind)
	}
}

// parseArray consumes an array.
// Precondition: the cursor is at a "[" token.
func (s *state) parseArray() (Value, error) {
	open, _ := s.consume()
	if err := s.enter(open); err != nil {
		return nil, err
	}
	defer s.leave()

	arr := Array{}

	// An empty array must be recognized before the element loop, or "[]"
	// would be misread as a missing element.
	tok, err := s.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == jot.RSquare {
		s.pos++
		return arr, nil
	}

	for {
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		tok, err := s.consume()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case jot.Comma:
			// next element
		case jot.RSquare:
			return arr, nil
		default:
			return nil, s.errAt(tok, ErrExpectedCommaOrClose,
				"expected %v or %v, got %v", jot.Comma, jot.RSquare, tok.Kind)
		}
	}
}

// parseObject consumes an object. Duplicate keys are legal and are kept in
// input order.
// Precondition: the cursor is at a "{" token.
func (s *state) parseObject() (Value, error) {
	open, _ := s.consume()
	if err := s.enter(open); err != nil {
		return nil, err
	}
	defer s.leave()

	obj := Object{}

	tok, err := s.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == jot.RBrace {
		s.pos++
		return obj, nil
	}

	for {
		key, err := s.consume()
		if err != nil {
			return nil, err
		}
		if key.Kind != jot.String {
			return nil, s.errAt(key, ErrExpectedKey, "expected object key, got %v", key.Kind)
		}
		colon, err := s.consume()
		if err != nil {
			return nil, err
		}
		if colon.Kind != jot.Colon {
			return nil, s.errAt(colon, ErrExpectedColon, "expected %v, got %v", jot.Colon, colon.Kind)
		}
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		obj = append(obj, &Member{Key: key.Text, Value: v})

		tok, err := s.consume()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case jot.Comma:
			// next member
		case jot.RBrace:
			return obj, nil
		default:
			return nil, s.errAt(tok, ErrExpectedCommaOrClose,
				"expected %v or %v, got %v", jot.Comma, jot.RBrace, tok.Kind)
		}
	}
}

// enter records entry into a container opened at tok, enforcing the
// nesting bound.
func (s *state) enter(tok jot.Token) error {
	s.depth++
	if s.depth > s.maxDepth {
		return s.errAt(tok, ErrTooDeep, "nesting deeper than %d", s.maxDepth)
	}
	return nil
}

func (s *state) leave() { s.depth-- }

func (s *state) errAt(tok jot.Token, kind error, msg string, args ...any) error {
	return &SyntaxError{
		Location: tok.Loc.First,
		Message:  fmt.Sprintf(msg, args...),
		err:      kind,
	}
}

func (s *state) eofErr() error {
	loc := jot.LineCol{Line: 1, Column: 0}
	if n := len(s.toks); n > 0 {
		loc = s.toks[n-1].Loc.Last
	}
	return &SyntaxError{
		Location: loc,
		Message:  "unexpected end of input",
		err:      ErrUnexpectedEOF,
	}
}
