package parser

import (
	"errors"
	"fmt"
	"math"

	"github.com/agenthands/ncalc/pkg/interp/lexer"
)

// Evaluation failure kinds. Errors returned by Evaluate wrap one of
// these (or a lexer error); discriminate with errors.Is.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

// TokenSource supplies tokens one at a time. *lexer.Scanner satisfies
// it; tests can substitute a scripted source.
type TokenSource interface {
	Next() (lexer.Token, error)
}

// Evaluator consumes a token stream by recursive descent and computes
// the expression value directly, without building a tree. Exactly one
// Evaluator drives a given TokenSource at a time.
//
// Grammar, precedence low to high, all operators left-associative:
//
//	expr   : term ((PLUS | MINUS) term)*
//	term   : factor ((MUL | DIV) factor)*
//	factor : INTEGER | LPAREN expr RPAREN
type Evaluator struct {
	src TokenSource
	cur lexer.Token
}

// New creates an evaluator and primes its one-token lookahead.
func New(src TokenSource) (*Evaluator, error) {
	e := &Evaluator{src: src}
	if err := e.eat(); err != nil {
		return nil, err
	}
	return e, nil
}

// Evaluate computes the value of one complete expression. The source
// must be exhausted afterwards; a trailing token is a syntax error.
func (e *Evaluator) Evaluate() (int64, error) {
	result, err := e.expr()
	if err != nil {
		return 0, err
	}
	if e.cur.Kind != lexer.KindEOF {
		return 0, fmt.Errorf("%w: unexpected trailing %s", ErrSyntax, e.cur.Kind)
	}
	return result, nil
}

// eat replaces the lookahead with the next token from the source.
func (e *Evaluator) eat() error {
	tok, err := e.src.Next()
	if err != nil {
		return err
	}
	e.cur = tok
	return nil
}

func (e *Evaluator) expr() (int64, error) {
	result, err := e.term()
	if err != nil {
		return 0, err
	}

	for e.cur.Kind == lexer.KindPlus || e.cur.Kind == lexer.KindMinus {
		op := e.cur.Kind
		if err := e.eat(); err != nil {
			return 0, err
		}
		rhs, err := e.term()
		if err != nil {
			return 0, err
		}
		if op == lexer.KindPlus {
			result, err = checkedAdd(result, rhs)
		} else {
			result, err = checkedSub(result, rhs)
		}
		if err != nil {
			return 0, err
		}
	}

	return result, nil
}

func (e *Evaluator) term() (int64, error) {
	result, err := e.factor()
	if err != nil {
		return 0, err
	}

	for e.cur.Kind == lexer.KindMul || e.cur.Kind == lexer.KindDiv {
		op := e.cur.Kind
		if err := e.eat(); err != nil {
			return 0, err
		}
		rhs, err := e.factor()
		if err != nil {
			return 0, err
		}
		if op == lexer.KindMul {
			result, err = checkedMul(result, rhs)
		} else {
			result, err = checkedDiv(result, rhs)
		}
		if err != nil {
			return 0, err
		}
	}

	return result, nil
}

func (e *Evaluator) factor() (int64, error) {
	switch e.cur.Kind {
	case lexer.KindInteger:
		value := e.cur.Value
		if err := e.eat(); err != nil {
			return 0, err
		}
		return value, nil
	case lexer.KindLParen:
		if err := e.eat(); err != nil {
			return 0, err
		}
		result, err := e.expr()
		if err != nil {
			return 0, err
		}
		if e.cur.Kind != lexer.KindRParen {
			return 0, fmt.Errorf("%w: expected ')', got %s", ErrSyntax, e.cur.Kind)
		}
		if err := e.eat(); err != nil {
			return 0, err
		}
		return result, nil
	}
	return 0, fmt.Errorf("%w: expected integer or '(', got %s", ErrSyntax, e.cur.Kind)
}

func checkedAdd(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, fmt.Errorf("%w in %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

func checkedSub(a, b int64) (int64, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, fmt.Errorf("%w in %d - %d", ErrOverflow, a, b)
	}
	return diff, nil
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/b != a || (a == math.MinInt64 && b == -1) {
		return 0, fmt.Errorf("%w in %d * %d", ErrOverflow, a, b)
	}
	return product, nil
}

// checkedDiv is truncating integer division.
func checkedDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("%w in %d / %d", ErrOverflow, a, b)
	}
	return a / b, nil
}
