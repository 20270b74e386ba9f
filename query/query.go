// Copyright (C) 2024 The jot Authors. All Rights Reserved.

// Package query implements structural path lookups over parsed JSON values.
//
// A path is a sequence of object keys and/or array indices describing a
// walk from the root of a value. For example, given the value
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the path
//
//	query.Path(v, 1, "c", "d")
//
// yields the value true. Object keys resolve to the first matching member;
// negative array indices count from the end of the array.
package query

import (
	"fmt"

	"github.com/arbelos/jot/ast"
)

// Path traverses a sequence of nested object keys or array indices from
// root. If no elements are specified, the root is returned. Each element
// must be a string or an int; Path panics otherwise.
func Path(root ast.Value, elems ...any) (ast.Value, error) {
	cur := root
	for _, elem := range elems {
		var err error
		switch t := elem.(type) {
		case string:
			cur, err = pathKey(cur, t)
		case int:
			cur, err = pathIndex(cur, t)
		default:
			panic(fmt.Sprintf("invalid path element %T", elem))
		}
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func pathKey(v ast.Value, key string) (ast.Value, error) {
	obj, ok := v.(ast.Object)
	if !ok {
		return nil, fmt.Errorf("got %T, want object", v)
	}
	m := obj.Find(key)
	if m == nil {
		return nil, fmt.Errorf("key %q not found", key)
	}
	return m.Value, nil
}

func pathIndex(v ast.Value, i int) (ast.Value, error) {
	arr, ok := v.(ast.Array)
	if !ok {
		return nil, fmt.Errorf("got %T, want array", v)
	}
	idx := i
	if idx < 0 {
		idx += len(arr)
	}
	if idx < 0 || idx >= len(arr) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", i, len(arr))
	}
	return arr[idx], nil
}
