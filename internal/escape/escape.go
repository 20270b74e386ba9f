// Copyright (C) 2024 The jot Authors. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src so that it is safe for inclusion in a JSON string.
// The enclosing double quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r >= utf8.RuneSelf {
			var rbuf [6]byte
			nb := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:nb]...)
			continue
		}
		switch {
		case r == '"' || r == '\\':
			buf = append(buf, '\\', byte(r))
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		default:
			buf = append(buf, byte(r))
		}
	}
	return buf
}

// Unquote decodes the JSON encoding of a string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. UTF-16
// surrogate pairs written as consecutive \uXXXX escapes are combined.
// Unquote reports an error for an invalid or incomplete escape sequence,
// and for an unpaired surrogate half.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))

		var r rune
		var err error
		src = src.SliceFrom(i)
		r, src, err = decodeEscape(src)
		if err != nil {
			return nil, err
		}
		if utf16.IsSurrogate(r) {
			r, src, err = decodeSurrogate(r, src)
			if err != nil {
				return nil, err
			}
		}
		var rbuf [6]byte
		n := utf8.EncodeRune(rbuf[:], r)
		dec = append(dec, rbuf[:n]...)
	}
	return dec, nil
}

// decodeEscape decodes a single escape sequence from the front of src,
// which must begin with a backslash. It returns the decoded rune and the
// remainder of src.
func decodeEscape(src mem.RO) (rune, mem.RO, error) {
	if src.Len() < 2 {
		return 0, src, errors.New("incomplete escape sequence")
	}
	b := src.At(1)
	src = src.SliceFrom(2)
	switch b {
	case '"', '\\', '/':
		return rune(b), src, nil
	case 'b':
		return '\b', src, nil
	case 'f':
		return '\f', src, nil
	case 'n':
		return '\n', src, nil
	case 'r':
		return '\r', src, nil
	case 't':
		return '\t', src, nil
	case 'u':
		if src.Len() < 4 {
			return 0, src, errors.New("incomplete Unicode escape")
		}
		v, err := parseHex(src.SliceTo(4))
		if err != nil {
			return 0, src, err
		}
		return rune(v), src.SliceFrom(4), nil
	}
	return 0, src, fmt.Errorf("invalid escape %q", rune(b))
}

// decodeSurrogate completes a surrogate pair whose high half is hi. The
// low half must follow immediately as another \uXXXX escape.
func decodeSurrogate(hi rune, src mem.RO) (rune, mem.RO, error) {
	if !utf16.IsSurrogate(hi) || hi >= 0xDC00 {
		return 0, src, fmt.Errorf("unpaired surrogate %04x", hi)
	}
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return 0, src, errors.New("missing low surrogate")
	}
	v, err := parseHex(src.SliceFrom(2).SliceTo(4))
	if err != nil {
		return 0, src, err
	}
	r := utf16.DecodeRune(hi, rune(v))
	if r == utf8.RuneError {
		return 0, src, fmt.Errorf("invalid surrogate pair %04x %04x", hi, v)
	}
	return r, src.SliceFrom(6), nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
