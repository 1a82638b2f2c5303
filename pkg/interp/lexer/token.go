package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindInteger
	KindPlus   // +
	KindMinus  // -
	KindMul    // *
	KindDiv    // /
	KindLParen // (
	KindRParen // )
)

var kindNames = [...]string{
	KindEOF:     "end of input",
	KindInteger: "integer",
	KindPlus:    "'+'",
	KindMinus:   "'-'",
	KindMul:     "'*'",
	KindDiv:     "'/'",
	KindLParen:  "'('",
	KindRParen:  "')'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token represents a single lexical unit. Tokens compare by value:
// two tokens are equal when their kinds match and, for KindInteger,
// their values match. Value is zero for every other kind.
type Token struct {
	Kind  Kind
	Value int64
}
