package hdltypes

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Operand is a Source that also knows its bounds. Vector, View and ConstView
// are Operands.
type Operand[T any] interface {
	Source[T]
	Range() Range
}

// ParseLogicVector parses a literal such as "01XZ" into a Vector indexed 1
// to n. Whitespace and '_' separators are skipped.
func ParseLogicVector(s string) (*Vector[Logic], error) {
	cs := literalChars(s)
	if len(cs) == 0 {
		return nil, fmt.Errorf("empty logic vector literal: %w", ErrInvalidArgument)
	}
	return ConvertVectorBounds(1, len(cs), cs, LogicFromChar)
}

// ParseLogicVectorBounds parses a literal into a Vector indexed left to
// right. The first character of s is element left.
func ParseLogicVectorBounds(left, right int, s string) (*Vector[Logic], error) {
	return ConvertVectorBounds(left, right, literalChars(s), LogicFromChar)
}

func ParseBitVector(s string) (*Vector[Bit], error) {
	cs := literalChars(s)
	if len(cs) == 0 {
		return nil, fmt.Errorf("empty bit vector literal: %w", ErrInvalidArgument)
	}
	return ConvertVectorBounds(1, len(cs), cs, BitFromChar)
}

func ParseBitVectorBounds(left, right int, s string) (*Vector[Bit], error) {
	return ConvertVectorBounds(left, right, literalChars(s), BitFromChar)
}

func literalChars(s string) []rune {
	cs := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '_' || unicode.IsSpace(c) {
			continue
		}
		cs = append(cs, c)
	}
	return cs
}

// FormatLogic renders src left to right, one character per element.
func FormatLogic(src Source[Logic]) string {
	var b strings.Builder
	b.Grow(src.Len())
	for v := range src.Values() {
		b.WriteRune(v.Char())
	}
	return b.String()
}

func FormatBits(src Source[Bit]) string {
	var b strings.Builder
	b.Grow(src.Len())
	for v := range src.Values() {
		b.WriteRune(v.Char())
	}
	return b.String()
}

// ToLogicVector widens every element of a Bit operand, keeping its bounds.
func ToLogicVector(src Operand[Bit]) *Vector[Logic] {
	R := src.Range()
	X := &Vector[Logic]{bounds: R, data: make([]Logic, 0, R.Length())}
	for v := range src.Values() {
		X.data = append(X.data, v.Logic())
	}
	return X
}

// ToBitVector narrows every element of a Logic operand. It fails with
// ErrDomain on the first element that is not Zero or One.
func ToBitVector(src Operand[Logic]) (*Vector[Bit], error) {
	R := src.Range()
	return ConvertVectorBounds(R.Left, R.Right, elems(src), ToBit)
}

func elems[T any](src Source[T]) []T {
	if s, ok := src.(storage[T]); ok {
		return s.window()
	}
	return slices.Collect(src.Values())
}

func binary(op string, f func(Logic, Logic) Logic, a, b Source[Logic]) ([]Logic, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%s: operand lengths %d and %d differ: %w",
			op, a.Len(), b.Len(), ErrInvalidArgument)
	}
	x, y := elems(a), elems(b)
	z := make([]Logic, len(x))
	for i := range x {
		z[i] = f(x[i], y[i])
	}
	return z, nil
}

// AndInto stores the element-wise And of a and b in dst. All three must have
// the same length. Operands may alias dst.
func AndInto(dst View[Logic], a, b Source[Logic]) error {
	z, err := binary("and", Logic.And, a, b)
	if err != nil {
		return err
	}
	return dst.AssignSlice(z)
}

func OrInto(dst View[Logic], a, b Source[Logic]) error {
	z, err := binary("or", Logic.Or, a, b)
	if err != nil {
		return err
	}
	return dst.AssignSlice(z)
}

func XorInto(dst View[Logic], a, b Source[Logic]) error {
	z, err := binary("xor", Logic.Xor, a, b)
	if err != nil {
		return err
	}
	return dst.AssignSlice(z)
}

func NotInto(dst View[Logic], a Source[Logic]) error {
	x := elems(a)
	z := make([]Logic, len(x))
	for i, v := range x {
		z[i] = v.Not()
	}
	return dst.AssignSlice(z)
}

// AndVec returns a new Vector with a's bounds holding the element-wise And
// of a and b.
func AndVec(a Operand[Logic], b Source[Logic]) (*Vector[Logic], error) {
	z, err := binary("and", Logic.And, a, b)
	if err != nil {
		return nil, err
	}
	return &Vector[Logic]{bounds: a.Range(), data: z}, nil
}

func OrVec(a Operand[Logic], b Source[Logic]) (*Vector[Logic], error) {
	z, err := binary("or", Logic.Or, a, b)
	if err != nil {
		return nil, err
	}
	return &Vector[Logic]{bounds: a.Range(), data: z}, nil
}

func XorVec(a Operand[Logic], b Source[Logic]) (*Vector[Logic], error) {
	z, err := binary("xor", Logic.Xor, a, b)
	if err != nil {
		return nil, err
	}
	return &Vector[Logic]{bounds: a.Range(), data: z}, nil
}

func NotVec(a Operand[Logic]) *Vector[Logic] {
	X := NewVector[Logic](a.Range().Left, a.Range().Right)
	i := 0
	for v := range a.Values() {
		X.data[i] = v.Not()
		i++
	}
	return X
}

// fold starts from the identity of f, as VHDL's reduction operators do, so
// a lone weak value still strengthens.
func fold(f func(Logic, Logic) Logic, Z Logic, src Source[Logic]) Logic {
	for v := range src.Values() {
		Z = f(Z, v)
	}
	return Z
}

// ReduceAnd folds src with And, like VHDL's unary "and".
func ReduceAnd(src Source[Logic]) Logic { return fold(Logic.And, One, src) }

// ReduceOr folds src with Or.
func ReduceOr(src Source[Logic]) Logic { return fold(Logic.Or, Zero, src) }

// ReduceXor folds src with Xor: One for odd parity, Zero for even.
func ReduceXor(src Source[Logic]) Logic { return fold(Logic.Xor, Zero, src) }

func ReduceNand(src Source[Logic]) Logic { return ReduceAnd(src).Not() }
func ReduceNor(src Source[Logic]) Logic  { return ReduceOr(src).Not() }
func ReduceXnor(src Source[Logic]) Logic { return ReduceXor(src).Not() }
