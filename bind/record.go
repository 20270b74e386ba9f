// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package bind

import "github.com/arbelos/jot/ast"

// A Setter populates one field of a record of type T from an object.
// Setters are produced by Field and Optional and composed by Record.
type Setter[T any] func(*T, ast.Object) error

// Field registers a required object member under the given key. A missing
// key reports a *FieldError wrapping ErrMissingField; a failed conversion
// reports a *FieldError wrapping the inner error. Duplicate keys resolve
// to the first occurrence, and member order is otherwise irrelevant.
func Field[T, F any](key string, f Func[F], set func(*T, F)) Setter[T] {
	return func(t *T, obj ast.Object) error {
		m := obj.Find(key)
		if m == nil {
			return &FieldError{Key: key, Err: ErrMissingField}
		}
		fv, err := f(m.Value)
		if err != nil {
			return &FieldError{Key: key, Err: err}
		}
		set(t, fv)
		return nil
	}
}

// Optional registers an object member that may be absent. An absent key
// leaves the target field untouched; a present key converts via f the same
// way Field does.
func Optional[T, F any](key string, f Func[F], set func(*T, F)) Setter[T] {
	return func(t *T, obj ast.Object) error {
		m := obj.Find(key)
		if m == nil {
			return nil
		}
		fv, err := f(m.Value)
		if err != nil {
			return &FieldError{Key: key, Err: err}
		}
		set(t, fv)
		return nil
	}
}

// Record composes field registrations into a conversion capability for T.
// The input must be a JSON object; fields are applied in registration
// order and the first failure aborts the conversion.
func Record[T any](fields ...Setter[T]) Func[T] {
	return func(v ast.Value) (T, error) {
		var t T
		obj, ok := v.(ast.Object)
		if !ok {
			return t, &TypeError{Want: "object", Value: v}
		}
		for _, set := range fields {
			if err := set(&t, obj); err != nil {
				return t, err
			}
		}
		return t, nil
	}
}
