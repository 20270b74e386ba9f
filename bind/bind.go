// Copyright (C) 2024 The jot Authors. All Rights Reserved.

// Package bind converts parsed JSON values into statically-typed Go values.
//
// A conversion capability is a [Func], a plain function from an ast.Value
// to a concrete target type. Base capabilities are provided for strings,
// numbers, and Booleans; the combinators Maybe, Slice, and Record compose
// them for container and record types. All dispatch is resolved at compile
// time; there is no reflection.
//
// Adding support for a new target type means writing one new Func. The
// lexer and parser are never involved.
package bind

import (
	"errors"
	"fmt"

	"github.com/arbelos/jot/ast"
	"github.com/creachadair/mds/value"
)

// A Func converts a JSON value into a T.
type Func[T any] func(ast.Value) (T, error)

// ErrMissingField is reported, wrapped in a *FieldError, when a required
// object member is absent.
var ErrMissingField = errors.New("missing required field")

// A TypeError reports that a value did not have the expected JSON type.
type TypeError struct {
	Want  string    // the expected type, e.g. "string"
	Value ast.Value // the offending value
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", TypeName(e.Value), e.Want)
}

// An ElementError reports a conversion failure for one array element.
type ElementError struct {
	Index int // the position of the failed element
	Err   error
}

// Error satisfies the error interface.
func (e *ElementError) Error() string { return fmt.Sprintf("element %d: %v", e.Index, e.Err) }

// Unwrap supports error wrapping.
func (e *ElementError) Unwrap() error { return e.Err }

// A FieldError reports a failure for one object member, either a missing
// required key (wrapping ErrMissingField) or a failed conversion of the
// member value.
type FieldError struct {
	Key string
	Err error
}

// Error satisfies the error interface.
func (e *FieldError) Error() string { return fmt.Sprintf("field %q: %v", e.Key, e.Err) }

// Unwrap supports error wrapping.
func (e *FieldError) Unwrap() error { return e.Err }

// String converts a JSON string value.
func String(v ast.Value) (string, error) {
	s, ok := v.(ast.String)
	if !ok {
		return "", &TypeError{Want: "string", Value: v}
	}
	return string(s), nil
}

// Float64 converts a JSON number value.
func Float64(v ast.Value) (float64, error) {
	n, ok := v.(ast.Number)
	if !ok {
		return 0, &TypeError{Want: "number", Value: v}
	}
	return float64(n), nil
}

// Bool converts a JSON Boolean value.
func Bool(v ast.Value) (bool, error) {
	b, ok := v.(ast.Bool)
	if !ok {
		return false, &TypeError{Want: "boolean", Value: v}
	}
	return bool(b), nil
}

// Maybe adapts f so that JSON null converts to an absent value, and any
// other input converts via f and wraps as present. A failure of the inner
// conversion propagates unchanged.
func Maybe[T any](f Func[T]) Func[value.Maybe[T]] {
	return func(v ast.Value) (value.Maybe[T], error) {
		if _, ok := v.(ast.Null); ok {
			return value.Absent[T](), nil
		}
		t, err := f(v)
		if err != nil {
			return value.Absent[T](), err
		}
		return value.Just(t), nil
	}
}

// Slice adapts f to convert every element of a JSON array in order. The
// first failing element aborts the conversion with an *ElementError
// recording its index; on success the result has the array's length.
func Slice[T any](f Func[T]) Func[[]T] {
	return func(v ast.Value) ([]T, error) {
		arr, ok := v.(ast.Array)
		if !ok {
			return nil, &TypeError{Want: "array", Value: v}
		}
		out := make([]T, len(arr))
		for i, ev := range arr {
			t, err := f(ev)
			if err != nil {
				return nil, &ElementError{Index: i, Err: err}
			}
			out[i] = t
		}
		return out, nil
	}
}

// TypeName returns the JSON type name of v.
func TypeName(v ast.Value) string {
	switch v.(type) {
	case ast.Object:
		return "object"
	case ast.Array:
		return "array"
	case ast.String:
		return "string"
	case ast.Number:
		return "number"
	case ast.Bool:
		return "boolean"
	case ast.Null:
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
