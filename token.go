// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package jot

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number, no exponent part
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is one lexical unit of an input, as materialized by Tokenize.
// Tokens are immutable once produced: the payload fields carry decoded
// values, not views into scanner state.
type Token struct {
	Kind Kind
	Text string  // decoded text of a String token, empty otherwise
	Num  float64 // decoded value of a Number token, zero otherwise
	Loc  Location
}

func (t Token) String() string { return t.Kind.String() }
