package internal

import (
	"math"
	"strconv"
	"strings"
)

// MaxTextLen is the longest text that concatenation or repetition can produce.
const MaxTextLen = 1 << 26

// Kind identifies which variant a Value holds.
type Kind int

const (
	IntegerKind Kind = iota
	TextKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case TextKind:
		return "text"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a scalar: either an integer or a piece of text. The zero Value is
// the integer 0.
type Value struct {
	kind Kind
	n    int64
	s    string
}

// NewInteger creates an integer value.
func NewInteger(n int64) Value {
	return Value{kind: IntegerKind, n: n}
}

// NewText creates a text value.
func NewText(s string) Value {
	return Value{kind: TextKind, s: s}
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Integer returns the integer held by v and whether v is an integer.
func (v Value) Integer() (int64, bool) {
	return v.n, v.kind == IntegerKind
}

// Text returns the text held by v and whether v is text.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == TextKind
}

// String returns the value as Print writes it.
func (v Value) String() string {
	if v.kind == IntegerKind {
		return strconv.FormatInt(v.n, 10)
	}
	return v.s
}

// GoString makes values readable in test failures and traces.
func (v Value) GoString() string {
	if v.kind == IntegerKind {
		return "NewInteger(" + strconv.FormatInt(v.n, 10) + ")"
	}
	return "NewText(" + strconv.Quote(v.s) + ")"
}

// Equal reports whether two values have the same kind and contents.
func (v Value) Equal(w Value) bool {
	return v == w
}

// coerceDigits converts text made entirely of ASCII digits to an integer.
// Anything else, including digit strings too large for an int64, is returned
// unchanged.
func coerceDigits(v Value) Value {
	if v.kind != TextKind || !isDigits(v.s) {
		return v
	}
	n, err := strconv.ParseInt(v.s, 10, 64)
	if err != nil {
		return v
	}
	return NewInteger(n)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// arith applies a binary arithmetic operator. Integers use 64-bit arithmetic,
// with division truncating toward zero; results that do not fit are an
// *OverflowError. Text supports + with text (concatenation) and * with an
// integer (repetition), up to MaxTextLen bytes.
func arith(op TokenKind, l, r Value) (Value, error) {
	if l.kind == IntegerKind && r.kind == IntegerKind {
		var n int64
		ok := true
		switch op {
		case PlusToken:
			n, ok = addInt(l.n, r.n)
		case MinusToken:
			n, ok = subInt(l.n, r.n)
		case MultiplyToken:
			n, ok = mulInt(l.n, r.n)
		case DivideToken:
			if r.n == 0 {
				return Value{}, &DivisionByZeroError{}
			}
			if l.n == math.MinInt64 && r.n == -1 {
				ok = false
				break
			}
			n = l.n / r.n
		default:
			return Value{}, &TypeError{Op: opText(op), Left: l.kind, Right: r.kind}
		}
		if !ok {
			return Value{}, &OverflowError{Op: opText(op), Kind: IntegerKind}
		}
		return NewInteger(n), nil
	}
	switch {
	case op == PlusToken && l.kind == TextKind && r.kind == TextKind:
		if len(l.s)+len(r.s) > MaxTextLen {
			return Value{}, &OverflowError{Op: "+", Kind: TextKind}
		}
		return NewText(l.s + r.s), nil
	case op == MultiplyToken && l.kind == TextKind && r.kind == IntegerKind:
		return repeat(l.s, r.n)
	case op == MultiplyToken && l.kind == IntegerKind && r.kind == TextKind:
		return repeat(r.s, l.n)
	}
	return Value{}, &TypeError{Op: opText(op), Left: l.kind, Right: r.kind}
}

func repeat(s string, n int64) (Value, error) {
	if n <= 0 || s == "" {
		return NewText(""), nil
	}
	if int64(len(s)) > MaxTextLen/n {
		return Value{}, &OverflowError{Op: "*", Kind: TextKind}
	}
	return NewText(strings.Repeat(s, int(n))), nil
}

func addInt(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return p, true
}

func opText(op TokenKind) string {
	switch op {
	case PlusToken:
		return "+"
	case MinusToken:
		return "-"
	case MultiplyToken:
		return "*"
	case DivideToken:
		return "/"
	}
	return op.String()
}

// compare applies a comparison operator after digit coercion. Values of
// different kinds are never equal and have no order.
func compare(op string, l, r Value) (bool, error) {
	l, r = coerceDigits(l), coerceDigits(r)
	switch op {
	case "==":
		return l == r, nil
	case "!=":
		return l != r, nil
	case "<", ">", "<=", ">=":
		// handled below
	default:
		return false, &InvalidOperatorError{Op: op}
	}
	var c int
	switch {
	case l.kind == IntegerKind && r.kind == IntegerKind:
		switch {
		case l.n < r.n:
			c = -1
		case l.n > r.n:
			c = 1
		}
	case l.kind == TextKind && r.kind == TextKind:
		c = strings.Compare(l.s, r.s)
	default:
		return false, &TypeError{Op: op, Left: l.kind, Right: r.kind}
	}
	switch op {
	case "<":
		return c < 0, nil
	case ">":
		return c > 0, nil
	case "<=":
		return c <= 0, nil
	default:
		return c >= 0, nil
	}
}
