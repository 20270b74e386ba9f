// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package jot_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/arbelos/jot"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jot.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jot.Kind{jot.True, jot.False, jot.Null}},

		// Punctuation
		{"{ [ ] } , :", []jot.Kind{
			jot.LBrace, jot.LSquare, jot.RSquare, jot.RBrace, jot.Comma, jot.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jot.Kind{jot.String, jot.String, jot.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jot.Kind{jot.String}},
		{`"Ǽꪜ 世界"`, []jot.Kind{jot.String}},

		// Numbers (no exponent support)
		{`0 -1 5139 2.3 -0.001`, []jot.Kind{
			jot.Number, jot.Number, jot.Number, jot.Number, jot.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jot.Kind{
			jot.LBrace, jot.True, jot.Comma, jot.String, jot.Colon,
			jot.Number, jot.Null, jot.LSquare, jot.RSquare, jot.RBrace,
		}},
		{`"a",1,true
     false["b"]
     `, []jot.Kind{
			jot.String, jot.Comma, jot.Number, jot.Comma, jot.True,
			jot.False, jot.LSquare, jot.String, jot.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jot.Kind
		s := jot.NewScanner(strings.NewReader(test.input))
		for s.Next() == nil {
			got = append(got, s.Kind())
		}
		if s.Err() != io.EOF {
			t.Errorf("Input: %#q\nNext failed: %v", test.input, s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nKinds: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokenize_decoding(t *testing.T) {
	toks, err := jot.Tokenize(strings.NewReader(
		`{"plain": "a b", "esc": "a\nb\t\"c\"", "uni": "é", "pair": "😀", "num": -2.75}`))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var strs []string
	var nums []float64
	for _, tok := range toks {
		switch tok.Kind {
		case jot.String:
			strs = append(strs, tok.Text)
		case jot.Number:
			nums = append(nums, tok.Num)
		}
	}
	wantStrs := []string{"plain", "a b", "esc", "a\nb\t\"c\"", "uni", "é", "pair", "\U0001f600", "num"}
	if diff := cmp.Diff(wantStrs, strs); diff != "" {
		t.Errorf("Decoded strings: (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff([]float64{-2.75}, nums); diff != "" {
		t.Errorf("Decoded numbers: (-want, +got)\n%s", diff)
	}
}

func TestTokenize_errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{`@`, jot.ErrUnexpectedChar},
		{`{"a": #}`, jot.ErrUnexpectedChar},
		{`"bad \x escape"`, jot.ErrUnexpectedChar},
		{`"bad \u00ZZ"`, jot.ErrUnexpectedChar},

		{`-`, jot.ErrInvalidNumber},
		{`1.2.3`, jot.ErrInvalidNumber},
		{`1-2`, jot.ErrInvalidNumber},
		{`--5`, jot.ErrInvalidNumber},

		{`tru`, jot.ErrInvalidKeyword},
		{`truthy`, jot.ErrInvalidKeyword},
		{`falsy`, jot.ErrInvalidKeyword},
		{`nul`, jot.ErrInvalidKeyword},

		// Exponents are not part of the grammar: the "e" begins a keyword.
		{`1e5`, jot.ErrUnexpectedChar},

		{`"unterminated`, io.ErrUnexpectedEOF},
		{`"trailing \`, io.ErrUnexpectedEOF},
	}
	for _, test := range tests {
		_, err := jot.Tokenize(strings.NewReader(test.input))
		if err == nil {
			t.Errorf("Input: %#q\nTokenize unexpectedly succeeded", test.input)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("Input: %#q\nGot error %v, want %v", test.input, err, test.want)
		}
		var lerr *jot.LexError
		if !errors.As(err, &lerr) {
			t.Errorf("Input: %#q\nError %v is not a *LexError", test.input, err)
		}
	}
}

func TestScanner_locations(t *testing.T) {
	const input = "{\n  \"x\": 1\n}"

	toks, err := jot.Tokenize(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var got []jot.LineCol
	for _, tok := range toks {
		got = append(got, tok.Loc.First)
	}
	want := []jot.LineCol{
		{Line: 1, Column: 0}, // {
		{Line: 2, Column: 2}, // "x"
		{Line: 2, Column: 5}, // :
		{Line: 2, Column: 7}, // 1
		{Line: 3, Column: 0}, // }
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locations: (-want, +got)\n%s", diff)
	}
}
