// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package jot_test

import (
	"testing"

	"github.com/arbelos/jot"
	"github.com/google/go-cmp/cmp"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"a b c", `"a b c"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"line\nfeed\ttab", `"line\nfeed\ttab"`},
		{"\x01\x1f", `"\u0001\u001f"`},
		{"héllo, 世界", `"héllo, 世界"`},
	}
	for _, test := range tests {
		if got := jot.Quote(test.input); got != test.want {
			t.Errorf("Quote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"a b c"`, "a b c"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"\"\\\/"`, `"\/`},
		{`"Aé"`, "Aé"},
		{`"😀"`, "\U0001f600"},
	}
	for _, test := range tests {
		got, err := jot.Unquote(test.input)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, string(got)); diff != "" {
			t.Errorf("Unquote(%#q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestUnquote_errors(t *testing.T) {
	tests := []string{
		`abc`,         // missing quotations
		`"`,           // missing quotations
		`"\"`,         // trailing incomplete escape
		`"\q"`,        // invalid escape letter
		`"\u12"`,      // truncated Unicode escape
		`"\uZZZZ"`,    // bad hex digits
		`"\ud83d"`,    // unpaired high surrogate
		`"\ud83d\n"`,  // high surrogate without low escape
		`"\ude00"`,    // lone low surrogate
		`"\ud83d\ud83d"`, // two high surrogates
	}
	for _, input := range tests {
		if got, err := jot.Unquote(input); err == nil {
			t.Errorf("Unquote(%#q): got %#q, want error", input, got)
		}
	}
}

// Quote must produce text that Unquote inverts exactly.
func TestQuoteUnquote_roundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"with \"quotes\" and \\slashes\\",
		"control \x00\x07\x1f chars",
		"multi-byte: ᚠᛇᚻ 世界 😀",
	}
	for _, input := range inputs {
		dec, err := jot.Unquote(jot.Quote(input))
		if err != nil {
			t.Errorf("Round trip %#q: unexpected error: %v", input, err)
			continue
		}
		if string(dec) != input {
			t.Errorf("Round trip %#q: got %#q", input, string(dec))
		}
	}
}
