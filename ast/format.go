// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the indentation unit. Empty means two spaces.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

func (f Formatter) maxLineItems() int { return 3 }

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the
// settings from f.
func (f Formatter) Format(w io.Writer, v Value) error {
	var buf bytes.Buffer
	f.formatValue(&buf, v, "")
	_, err := w.Write(buf.Bytes())
	return err
}

// formatValue writes a representation of v to buf, with nested lines
// indented beyond indent.
func (f Formatter) formatValue(buf *bytes.Buffer, v Value, indent string) {
	switch t := v.(type) {
	case Array:
		f.formatArray(buf, t, indent)
	case Object:
		f.formatObject(buf, t, indent)
	case String, Number, Bool, Null:
		buf.WriteString(v.JSON())
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (f Formatter) formatArray(buf *bytes.Buffer, a Array, indent string) {
	if len(a) == 0 {
		buf.WriteString("[]")
		return
	}
	if f.isBoring(a) {
		buf.WriteByte('[')
		for i, v := range a {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(v.JSON())
		}
		buf.WriteByte(']')
		return
	}
	inner := indent + f.indent()
	buf.WriteString("[\n")
	for i, v := range a {
		buf.WriteString(inner)
		f.formatValue(buf, v, inner)
		if i+1 < len(a) {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteByte(']')
}

func (f Formatter) formatObject(buf *bytes.Buffer, o Object, indent string) {
	if len(o) == 0 {
		buf.WriteString("{}")
		return
	}
	if f.isBoring(o) {
		buf.WriteByte('{')
		for i, m := range o {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(String(m.Key).JSON())
			buf.WriteString(": ")
			buf.WriteString(m.Value.JSON())
		}
		buf.WriteByte('}')
		return
	}
	inner := indent + f.indent()
	buf.WriteString("{\n")
	for i, m := range o {
		buf.WriteString(inner)
		buf.WriteString(String(m.Key).JSON())
		buf.WriteString(": ")
		f.formatValue(buf, m.Value, inner)
		if i+1 < len(o) {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteByte('}')
}

// isBoring reports whether v is a container small enough, and flat enough,
// to render on a single line.
func (f Formatter) isBoring(v Value) bool {
	switch t := v.(type) {
	case Array:
		if len(t) > f.maxLineItems() {
			return false
		}
		for _, e := range t {
			if !isLeaf(e) {
				return false
			}
		}
		return true
	case Object:
		if len(t) > f.maxLineItems() {
			return false
		}
		for _, m := range t {
			if !isLeaf(m.Value) {
				return false
			}
		}
		return true
	}
	return false
}

func isLeaf(v Value) bool {
	switch v.(type) {
	case Array, Object:
		return false
	}
	return true
}
