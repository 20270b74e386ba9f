// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package jot

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go4.org/mem"
)

// Sentinel errors wrapped by lexical errors from the scanner. Use errors.Is
// to check which kind of lexical failure occurred.
var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrInvalidNumber  = errors.New("invalid number literal")
	ErrInvalidKeyword = errors.New("invalid keyword literal")
)

// A LexError describes a lexical error and its position in the input.
// It wraps one of the sentinel errors above, or an underlying I/O error.
type LexError struct {
	Offset int     // byte offset of the error, 0-based
	Loc    LineCol // line and column of the error

	msg string
	err error
}

func (e *LexError) Error() string { return fmt.Sprintf("at %s: %s", e.Loc, e.msg) }

func (e *LexError) Unwrap() error { return e.err }

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	r   *bufio.Reader
	buf bytes.Buffer // raw text of the current token
	tok Kind
	num float64 // decoded value, when tok == Number
	err error

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{r: br}
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	s.buf.Reset()
	s.err = nil
	s.tok = Invalid
	s.num = 0
	s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol

	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.setErr(err)
		} else if err != nil {
			return s.fail(err)
		}

		// Discard whitespace.
		if isSpace(ch) {
			if ch == '\n' {
				s.eline++
				s.ecol = 0
			}
			s.pos, s.pline, s.pcol = s.end, s.eline, s.ecol
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			s.buf.WriteRune(ch)
			s.tok = t
			return nil
		}

		// Handle numbers.
		if isNumStart(ch) {
			return s.scanNumber(ch)
		}

		// Handle string values.
		if ch == '"' {
			return s.scanString(ch)
		}

		// Handle constants: true, false, null
		var want mem.RO
		switch ch {
		case 't':
			s.tok = True
			want = mem.S("true")
		case 'f':
			s.tok = False
			want = mem.S("false")
		case 'n':
			s.tok = Null
			want = mem.S("null")
		default:
			return s.failf(ErrUnexpectedChar, "unexpected %q", ch)
		}
		if err := s.scanName(ch); err != nil {
			return err
		}
		if got := mem.B(s.buf.Bytes()); !got.Equal(want) {
			return s.failf(ErrInvalidKeyword, "unknown constant %q", got.StringCopy())
		}
		return nil // OK, token is already set
	}
}

// Kind returns the kind of the current token.
func (s *Scanner) Kind() Kind { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token. String tokens
// include their enclosing quotation marks. The return value is only valid
// until the next call of Next; the caller must copy the contents if they
// are needed beyond that.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.buf.Bytes()...) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.eline + 1, Column: s.ecol},
	}
}

// Tokenize materializes the full token stream of r, decoding string escapes
// and number literals. The resulting tokens are self-contained; they share
// no state with the scanner that produced them.
//
// There is no end-of-input token. An empty or all-whitespace input yields an
// empty slice and no error.
func Tokenize(r io.Reader) ([]Token, error) {
	s := NewScanner(r)
	var toks []Token
	for {
		if err := s.Next(); err == io.EOF {
			return toks, nil
		} else if err != nil {
			return nil, err
		}
		tok := Token{Kind: s.tok, Loc: s.Location()}
		switch s.tok {
		case String:
			dec, err := Unquote(string(s.buf.Bytes()))
			if err != nil {
				return nil, s.failf(ErrUnexpectedChar, "invalid string: %v", err)
			}
			tok.Text = string(dec)
		case Number:
			tok.Num = s.num
		}
		toks = append(toks, tok)
	}
}

func (s *Scanner) scanString(open rune) error {
	s.buf.WriteRune(open)
	var esc bool
	for {
		ch, err := s.rune()
		if err == io.EOF {
			return s.failf(io.ErrUnexpectedEOF, "unterminated string")
		} else if err != nil {
			return s.fail(err)
		} else if ch == open && !esc {
			s.buf.WriteRune(ch)
			s.tok = String
			return nil
		}
		if esc {
			// We are awaiting the completion of a \-escape.
			switch ch {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.buf.WriteByte(byte(ch))
			case 'u':
				s.buf.WriteByte(byte(ch))
				if err := s.readHex4(); err != nil {
					return s.failf(ErrUnexpectedChar, "invalid Unicode escape: %v", err)
				}
			default:
				return s.failf(ErrUnexpectedChar, "invalid %q after escape", ch)
			}
			esc = false
		} else if ch < ' ' {
			return s.failf(ErrUnexpectedChar, "unescaped control %q", ch)
		} else {
			s.buf.WriteRune(ch)
			esc = ch == '\\'
		}
	}
}

// scanNumber consumes a number literal starting with first. The accepted
// character set is digits, ".", and "-"; the accumulated text must then
// parse as a floating-point value. Exponent notation is not part of the
// grammar, so "1e5" lexes as the number 1 followed by a keyword error.
func (s *Scanner) scanNumber(first rune) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isNumRune)
	if err == nil {
		s.unrune()
	} else if err != io.EOF {
		return s.fail(err)
	}

	text := s.buf.String()
	v, perr := strconv.ParseFloat(text, 64)
	if perr != nil {
		return s.failf(ErrInvalidNumber, "malformed number %q", text)
	}
	s.num = v
	s.tok = Number
	return nil
}

func (s *Scanner) scanName(first rune) error {
	s.buf.WriteRune(first)
	_, _, err := s.readWhile(isNameRune)
	if err == io.EOF {
		return nil
	} else if err != nil {
		return s.fail(err)
	}
	s.unrune()
	return nil
}

func (s *Scanner) rune() (rune, error) {
	ch, nb, err := s.r.ReadRune()
	s.last = nb
	s.end += nb
	s.ecol += nb
	return ch, err
}

func (s *Scanner) unrune() {
	s.end -= s.last
	s.ecol -= s.last
	s.last = 0
	s.r.UnreadRune()
}

// readWhile consumes runes matching f from the input until EOF or until a
// rune not matching f is found. It is the caller's responsibility to unread
// the non-matching rune, if desired. The int reports the number of runes
// consumed.
func (s *Scanner) readWhile(f func(rune) bool) (int, rune, error) {
	var nr int
	for {
		ch, err := s.rune()
		if err != nil {
			return nr, 0, err
		} else if !f(ch) {
			return nr, ch, nil
		}
		s.buf.WriteRune(ch)
		nr++
	}
}

// readHex4 reads exactly 4 hexadecimal digits from the input.
func (s *Scanner) readHex4() error {
	for i := 0; i < 4; i++ {
		ch, err := s.rune()
		if err != nil {
			return err
		} else if !isHexDigit(ch) {
			return fmt.Errorf("not a hex digit: %q", ch)
		}
		s.buf.WriteRune(ch)
	}
	return nil
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) fail(err error) error {
	return s.setErr(&LexError{
		Offset: s.end,
		Loc:    LineCol{Line: s.eline + 1, Column: s.ecol},
		msg:    err.Error(),
		err:    err,
	})
}

func (s *Scanner) failf(kind error, msg string, args ...any) error {
	return s.setErr(&LexError{
		Offset: s.end,
		Loc:    LineCol{Line: s.eline + 1, Column: s.ecol},
		msg:    fmt.Sprintf(msg, args...),
		err:    kind,
	})
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isNumRune(ch rune) bool  { return isDigit(ch) || ch == '.' || ch == '-' }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }
func isNameRune(ch rune) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
