// Copyright (C) 2024 The jot Authors. All Rights Reserved.

// Package ast defines the tree representation of JSON values, and a parser
// that constructs trees from JSON source.
package ast

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arbelos/jot"
)

// A Value is an arbitrary JSON value. The set of implementations is closed:
// a Value is exactly one of Object, Array, String, Number, Bool, or Null.
type Value interface {
	// JSON renders the value as JSON text. The output is accepted back by
	// the parser and yields an equal value.
	JSON() string

	astValue() // seals the union
}

// An Object is an ordered collection of key-value members. Duplicate keys
// are legal; lookup resolves to the first occurrence.
type Object []*Member

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len returns the number of members in o.
func (o Object) Len() int { return len(o) }

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (Object) astValue() {}

// A Member is a single key-value pair belonging to an Object.
// A Member is not itself a Value.
type Member struct {
	Key   string
	Value Value
}

// JSON renders the member as JSON text.
func (m *Member) JSON() string { return jot.Quote(m.Key) + ":" + m.Value.JSON() }

// An Array is an ordered sequence of values.
type Array []Value

// Len returns the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (Array) astValue() {}

// A String is a string value. Its text is fully decoded.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jot.Quote(string(s)) }

func (String) astValue() {}

// A Number is a numeric value.
type Number float64

// JSON satisfies the Value interface. Output never uses exponent notation,
// which is not part of the accepted grammar.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

func (Number) astValue() {}

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

func (Bool) astValue() {}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (Null) astValue() {}

// ToValue converts a plain Go value into an equivalent ast.Value.
// It accepts nil, bool, string, int, int64, float64, []any, and
// map[string]any (members ordered by key for determinism), as well as any
// existing Value, which is returned unchanged. ToValue panics if given a
// value outside this set.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		arr := make(Array, len(t))
		for i, e := range t {
			arr[i] = ToValue(e)
		}
		return arr
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := make(Object, len(keys))
		for i, k := range keys {
			obj[i] = &Member{Key: k, Value: ToValue(t[k])}
		}
		return obj
	}
	panic("invalid value")
}
