package lexer

import (
	"errors"
	"fmt"
	"math"
)

// Lexical failure kinds. Errors returned by Next wrap one of these;
// discriminate with errors.Is.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrOverflow         = errors.New("integer overflow")
)

// Scanner performs lexical analysis on one line of expression source.
// The cursor only moves forward; once the source is exhausted Next
// returns KindEOF forever.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
}

// Next returns the next token from the source.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF}, nil
	}

	ch := s.source[s.cursor]

	if isDigit(ch) {
		return s.scanInteger()
	}

	s.cursor++
	switch ch {
	case '+':
		return Token{Kind: KindPlus}, nil
	case '-':
		return Token{Kind: KindMinus}, nil
	case '*':
		return Token{Kind: KindMul}, nil
	case '/':
		return Token{Kind: KindDiv}, nil
	case '(':
		return Token{Kind: KindLParen}, nil
	case ')':
		return Token{Kind: KindRParen}, nil
	}

	return Token{}, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, ch, s.cursor-1)
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r', '\n':
			s.cursor++
		default:
			return
		}
	}
}

// scanInteger consumes a maximal run of ASCII digits and accumulates
// the base-10 value directly, so the success path does not allocate.
func (s *Scanner) scanInteger() (Token, error) {
	start := s.cursor
	var value int64
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		digit := int64(s.source[s.cursor] - '0')
		if value > (math.MaxInt64-digit)/10 {
			// Consume the rest of the run so the cursor stays past the literal.
			for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
				s.cursor++
			}
			return Token{}, fmt.Errorf("%w: literal %q at offset %d", ErrOverflow, s.source[start:s.cursor], start)
		}
		value = value*10 + digit
		s.cursor++
	}
	return Token{Kind: KindInteger, Value: value}, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
