package token

import "sort"

// UnaryOperator wraps one of the prefix operator spellings spec §3 names.
// Named constants exist for every unary operator the grammar recognises.
type UnaryOperator string

const (
	UnaryPlus     UnaryOperator = "+"
	UnaryMinus    UnaryOperator = "-"
	UnaryNot      UnaryOperator = "!"
	UnaryBitNot   UnaryOperator = "~"
	UnaryTypeOf   UnaryOperator = "typeof"
	UnaryVoid     UnaryOperator = "void"
	UnaryDelete   UnaryOperator = "delete"
	UnaryThrow    UnaryOperator = "throw"
)

func (o UnaryOperator) String() string { return string(o) }

// BinaryOperator wraps one of the infix operator spellings spec §3 names.
// BinaryOperator has a total order (lexicographic on spelling), so it is
// usable as a map key the same way the source's operator wrapper objects
// were, without the global-static instances spec §9 warns against.
type BinaryOperator string

const (
	BinaryEqual              BinaryOperator = "=="
	BinaryNotEqual           BinaryOperator = "!="
	BinaryStrictEqual        BinaryOperator = "==="
	BinaryStrictNotEqual     BinaryOperator = "!=="
	BinaryLess               BinaryOperator = "<"
	BinaryLessOrEqual        BinaryOperator = "<="
	BinaryGreater            BinaryOperator = ">"
	BinaryGreaterOrEqual     BinaryOperator = ">="
	BinaryShiftLeft          BinaryOperator = "<<"
	BinaryShiftRight         BinaryOperator = ">>"
	BinaryUnsignedShiftRight BinaryOperator = ">>>"
	BinaryPlus               BinaryOperator = "+"
	BinaryMinus              BinaryOperator = "-"
	BinaryMultiply           BinaryOperator = "*"
	BinaryDivide             BinaryOperator = "/"
	BinaryRemainder          BinaryOperator = "%"
)

func (o BinaryOperator) String() string { return string(o) }

// Less orders two BinaryOperators lexicographically on their spelling.
func (o BinaryOperator) Less(other BinaryOperator) bool { return o < other }

// SortBinaryOperators sorts a slice in place by the total order above; used
// by tests that need deterministic iteration over a set of operators.
func SortBinaryOperators(ops []BinaryOperator) {
	sort.Slice(ops, func(i, j int) bool { return ops[i].Less(ops[j]) })
}

// Precedence is the default precedence table spec §4.3 describes: binary
// operators map to a precedence class; anything absent from the table is
// Undefined and terminates precedence-climbing ascent. Less/ShiftLeft can
// never actually reach this lookup — the scanner has no token for them —
// but the entries are kept so the table matches spec's literal text.
const Undefined = -1

var precedence = map[BinaryOperator]int{
	BinaryLess:      5,
	BinaryShiftLeft: 5,
	BinaryPlus:      10,
	BinaryMinus:     10,
	BinaryMultiply:  20,
	BinaryDivide:    20,
}

// Precedence reports op's binding power, or Undefined if op isn't in the
// default precedence table.
func Precedence(op BinaryOperator) int {
	if p, ok := precedence[op]; ok {
		return p
	}
	return Undefined
}

// BinaryOperatorFromToken maps the handful of Token kinds the scanner can
// actually produce that double as binary operators onto their
// BinaryOperator spelling. This is deliberately narrower than the
// BinaryOperator enumeration above: the grammar names every spelling a
// general JS binary expression could use, but this scanner's closed token
// set only ever emits +, -, *, / as candidates (spec §4.1's single-
// character operator list), so that's all this mapping covers.
func BinaryOperatorFromToken(tok Token) (BinaryOperator, bool) {
	switch tok {
	case Plus:
		return BinaryPlus, true
	case Minus:
		return BinaryMinus, true
	case Star:
		return BinaryMultiply, true
	case Slash:
		return BinaryDivide, true
	}
	return "", false
}

// UnaryOperatorFromToken maps a prefix-operator token to its spelling.
func UnaryOperatorFromToken(tok Token) (UnaryOperator, bool) {
	switch tok {
	case Plus:
		return UnaryPlus, true
	case Minus:
		return UnaryMinus, true
	case Not:
		return UnaryNot, true
	case BitNot:
		return UnaryBitNot, true
	case TypeOf:
		return UnaryTypeOf, true
	case Void:
		return UnaryVoid, true
	case Delete:
		return UnaryDelete, true
	case Throw:
		return UnaryThrow, true
	}
	return "", false
}
