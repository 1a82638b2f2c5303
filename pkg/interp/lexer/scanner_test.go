package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/ncalc/pkg/interp/lexer"
)

func TestScannerTokenSequence(t *testing.T) {
	src := []byte(`7 + 3 * (10 / 2)`)
	s := lexer.NewScanner(src)

	expected := []lexer.Token{
		{Kind: lexer.KindInteger, Value: 7},
		{Kind: lexer.KindPlus},
		{Kind: lexer.KindInteger, Value: 3},
		{Kind: lexer.KindMul},
		{Kind: lexer.KindLParen},
		{Kind: lexer.KindInteger, Value: 10},
		{Kind: lexer.KindDiv},
		{Kind: lexer.KindInteger, Value: 2},
		{Kind: lexer.KindRParen},
		{Kind: lexer.KindEOF},
	}

	for i, exp := range expected {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("token %d: unexpected error: %v", i, err)
		}
		if tok != exp {
			t.Errorf("token %d: expected %+v, got %+v", i, exp, tok)
		}
	}
}

func TestScannerWhitespace(t *testing.T) {
	for _, src := range []string{"2+3", "  2+ 3 ", "\t2 +\r\n3\n"} {
		s := lexer.NewScanner([]byte(src))
		var kinds []lexer.Kind
		for {
			tok, err := s.Next()
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", src, err)
			}
			kinds = append(kinds, tok.Kind)
			if tok.Kind == lexer.KindEOF {
				break
			}
		}
		expected := []lexer.Kind{lexer.KindInteger, lexer.KindPlus, lexer.KindInteger, lexer.KindEOF}
		if len(kinds) != len(expected) {
			t.Fatalf("%q: expected %d tokens, got %d", src, len(expected), len(kinds))
		}
		for i := range expected {
			if kinds[i] != expected[i] {
				t.Errorf("%q token %d: expected %v, got %v", src, i, expected[i], kinds[i])
			}
		}
	}
}

func TestScannerEOFIdempotent(t *testing.T) {
	s := lexer.NewScanner([]byte("42"))
	if tok, err := s.Next(); err != nil || tok.Value != 42 {
		t.Fatalf("expected integer 42, got %+v (%v)", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("EOF call %d: unexpected error: %v", i, err)
		}
		if tok.Kind != lexer.KindEOF {
			t.Errorf("EOF call %d: expected KindEOF, got %v", i, tok.Kind)
		}
	}
}

func TestScannerInvalidCharacter(t *testing.T) {
	s := lexer.NewScanner([]byte("2 & 3"))
	if _, err := s.Next(); err != nil {
		t.Fatalf("unexpected error on first token: %v", err)
	}
	_, err := s.Next()
	if !errors.Is(err, lexer.ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
	if !strings.Contains(err.Error(), "'&'") || !strings.Contains(err.Error(), "offset 2") {
		t.Errorf("diagnostic should name the character and offset: %v", err)
	}
}

func TestScannerIntegerOverflow(t *testing.T) {
	// MaxInt64 is fine, one more is not.
	s := lexer.NewScanner([]byte("9223372036854775807"))
	tok, err := s.Next()
	if err != nil || tok.Value != 9223372036854775807 {
		t.Fatalf("expected MaxInt64 literal, got %+v (%v)", tok, err)
	}

	s.Reset([]byte("9223372036854775808"))
	if _, err := s.Next(); !errors.Is(err, lexer.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	// The cursor must have passed the bad literal.
	if tok, err := s.Next(); err != nil || tok.Kind != lexer.KindEOF {
		t.Errorf("expected EOF after overflowing literal, got %+v (%v)", tok, err)
	}
}

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte(`7 + 3 * (10 / (12 / (3 + 1) - 1))`)
	s := lexer.NewScanner(src)

	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			tok, err := s.Next()
			if err != nil || tok.Kind == lexer.KindEOF {
				break
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}
