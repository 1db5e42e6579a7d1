package match

import "unicode"

// --- Lexical token specs ---------------------------------------------------

// TokenSpec describes a predicate-driven lexical token: the node optionally
// skips leading elements satisfying Skip, then greedily consumes the maximal
// run satisfying Pred, requires the run to be at least AtLeast long, and
// converts the run into a single value via Parse.
//
// A nil Parse delivers the run folded by the Matcher (a string for text
// matchers). A Parse returning nil delivers nothing, which makes a token
// purely consuming (whitespace).
type TokenSpec[T any] struct {
	Name    string
	Pred    func(T) bool
	Skip    func(T) bool
	AtLeast int
	Parse   func([]T) interface{}
}

// Digits returns a token spec for a numeric literal in the given base
// (2 ≤ base ≤ 36), parsed to an int.
func Digits(base int) *TokenSpec[rune] {
	name := "NUM"
	switch base {
	case 16:
		name = "HEX"
	case 8:
		name = "OCT"
	case 2:
		name = "BIN"
	}
	return &TokenSpec[rune]{
		Name:    name,
		Pred:    func(ch rune) bool { return digitVal(ch) >= 0 && digitVal(ch) < base },
		AtLeast: 1,
		Parse: func(run []rune) interface{} {
			value := 0
			for _, ch := range run {
				value = value*base + digitVal(ch)
			}
			return value
		},
	}
}

func digitVal(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10
	}
	return -1
}

// Builtin rune token specs, mirrored by the identifiers package lang binds.
var (
	Num    = Digits(10)
	HexNum = Digits(16)
	OctNum = Digits(8)
	BinNum = Digits(2)

	// Whitespace consumes a whitespace run and delivers nothing.
	Whitespace = &TokenSpec[rune]{
		Name:    "WS",
		Pred:    unicode.IsSpace,
		AtLeast: 1,
		Parse:   func([]rune) interface{} { return nil },
	}

	// Alphabetic matches a letter run, delivered as a string.
	Alphabetic = &TokenSpec[rune]{
		Name:    "ALPHABETIC",
		Pred:    unicode.IsLetter,
		AtLeast: 1,
		Parse:   func(run []rune) interface{} { return string(run) },
	}

	// Alphanumeric matches a letter/digit run, delivered as a string.
	Alphanumeric = &TokenSpec[rune]{
		Name:    "ALPHANUMERIC",
		Pred: func(ch rune) bool {
			return unicode.IsLetter(ch) || unicode.IsDigit(ch)
		},
		AtLeast: 1,
		Parse:   func(run []rune) interface{} { return string(run) },
	}
)
