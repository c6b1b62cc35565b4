package hdltypes

import (
	"fmt"
)

// Logic models VHDL's std_ulogic. The ordinal order of the constants is part
// of the public contract and must not change.
//
// Like VHDL:
//   - weak values become strong when operated on
//   - operations on non-0/1 values yield unknowns
//   - operations involving Unassigned yield Unassigned unless a forcing
//     value decides the result
type Logic uint8

const (
	Unassigned  Logic = iota // U
	Unknown                  // X
	Zero                     // 0
	One                      // 1
	HighZ                    // Z
	WeakUnknown              // W
	WeakZero                 // L
	WeakOne                  // H
	DontCare                 // -
)

// short names for the tables below
const (
	lU = Unassigned
	lX = Unknown
	l0 = Zero
	l1 = One
	lZ = HighZ
	lW = WeakUnknown
	lL = WeakZero
	lH = WeakOne
	lD = DontCare
)

var logicChars = [9]rune{'U', 'X', '0', '1', 'Z', 'W', 'L', 'H', '-'}

var andTable = [9][9]Logic{
	//  U   X   0   1   Z   W   L   H   -
	{lU, lU, l0, lU, lU, lU, l0, lU, lU}, // U
	{lU, lX, l0, lX, lX, lX, l0, lX, lX}, // X
	{l0, l0, l0, l0, l0, l0, l0, l0, l0}, // 0
	{lU, lX, l0, l1, lX, lX, l0, l1, lX}, // 1
	{lU, lX, l0, lX, lX, lX, l0, lX, lX}, // Z
	{lU, lX, l0, lX, lX, lX, l0, lX, lX}, // W
	{l0, l0, l0, l0, l0, l0, l0, l0, l0}, // L
	{lU, lX, l0, l1, lX, lX, l0, l1, lX}, // H
	{lU, lX, l0, lX, lX, lX, l0, lX, lX}, // -
}

var orTable = [9][9]Logic{
	//  U   X   0   1   Z   W   L   H   -
	{lU, lU, lU, l1, lU, lU, lU, l1, lU}, // U
	{lU, lX, lX, l1, lX, lX, lX, l1, lX}, // X
	{lU, lX, l0, l1, lX, lX, l0, l1, lX}, // 0
	{l1, l1, l1, l1, l1, l1, l1, l1, l1}, // 1
	{lU, lX, lX, l1, lX, lX, lX, l1, lX}, // Z
	{lU, lX, lX, l1, lX, lX, lX, l1, lX}, // W
	{lU, lX, l0, l1, lX, lX, l0, l1, lX}, // L
	{l1, l1, l1, l1, l1, l1, l1, l1, l1}, // H
	{lU, lX, lX, l1, lX, lX, lX, l1, lX}, // -
}

var xorTable = [9][9]Logic{
	//  U   X   0   1   Z   W   L   H   -
	{lU, lU, lU, lU, lU, lU, lU, lU, lU}, // U
	{lU, lX, lX, lX, lX, lX, lX, lX, lX}, // X
	{lU, lX, l0, l1, lX, lX, l0, l1, lX}, // 0
	{lU, lX, l1, l0, lX, lX, l1, l0, lX}, // 1
	{lU, lX, lX, lX, lX, lX, lX, lX, lX}, // Z
	{lU, lX, lX, lX, lX, lX, lX, lX, lX}, // W
	{lU, lX, l0, l1, lX, lX, l0, l1, lX}, // L
	{lU, lX, l1, l0, lX, lX, l1, l0, lX}, // H
	{lU, lX, lX, lX, lX, lX, lX, lX, lX}, // -
}

var notTable = [9]Logic{
	// U   X   0   1   Z   W   L   H   -
	lU, lX, l1, l0, lX, lX, l1, l0, lX,
}

// LogicFromChar converts a character into a Logic.
//
//	'U' 'u'  => Unassigned
//	'X' 'x'  => Unknown
//	'0'      => Zero
//	'1'      => One
//	'Z' 'z'  => HighZ
//	'W' 'w'  => WeakUnknown
//	'L' 'l'  => WeakZero
//	'H' 'h'  => WeakOne
//	'-'      => DontCare
func LogicFromChar(c rune) (Logic, error) {
	switch c {
	case 'U', 'u':
		return Unassigned, nil
	case 'X', 'x':
		return Unknown, nil
	case '0':
		return Zero, nil
	case '1':
		return One, nil
	case 'Z', 'z':
		return HighZ, nil
	case 'W', 'w':
		return WeakUnknown, nil
	case 'L', 'l':
		return WeakZero, nil
	case 'H', 'h':
		return WeakOne, nil
	case '-':
		return DontCare, nil
	}
	return Unassigned, fmt.Errorf("%q is not a Logic: %w", c, ErrInvalidValue)
}

// LogicFromInt converts 0 and 1 to Zero and One.
func LogicFromInt(i int) (Logic, error) {
	switch i {
	case 0:
		return Zero, nil
	case 1:
		return One, nil
	}
	return Unassigned, fmt.Errorf("%d is not a Logic: %w", i, ErrInvalidValue)
}

// LogicFromBool converts false and true to Zero and One.
func LogicFromBool(b bool) Logic {
	if b {
		return One
	}
	return Zero
}

// MustLogic is LogicFromChar for literals known to be valid. It panics
// otherwise.
func MustLogic(c rune) Logic {
	A, err := LogicFromChar(c)
	if err != nil {
		panic(err)
	}
	return A
}

// ParseLogic converts any accepted input kind into a Logic.
//
// Characters are rune, byte and one-character strings. Integers of any other
// kind must be 0 or 1. Bools, Bits and Logics are always accepted.
func ParseLogic(v any) (Logic, error) {
	switch c := v.(type) {
	case Logic:
		if c > DontCare {
			return Unassigned, fmt.Errorf("ordinal %d is not a Logic: %w", uint8(c), ErrInvalidValue)
		}
		return c, nil
	case Bit:
		b, err := ParseBit(c)
		if err != nil {
			return Unassigned, err
		}
		return b.Logic(), nil
	case bool:
		return LogicFromBool(c), nil
	case rune:
		return LogicFromChar(c)
	case byte:
		return LogicFromChar(rune(c))
	case string:
		r := []rune(c)
		if len(r) != 1 {
			return Unassigned, fmt.Errorf("%q is not a Logic: %w", c, ErrInvalidValue)
		}
		return LogicFromChar(r[0])
	}
	i, ok := asInt(v)
	if !ok {
		return Unassigned, fmt.Errorf("%T is not convertible to Logic: %w", v, ErrInvalidValue)
	}
	switch i {
	case 0:
		return Zero, nil
	case 1:
		return One, nil
	}
	return Unassigned, fmt.Errorf("%v is not a Logic: %w", v, ErrInvalidValue)
}

// asInt reports v widened to int64 when it is one of the integer kinds not
// treated as characters. Unsigned values too large for int64 never equal 0
// or 1, so they map to -1.
func asInt(v any) (int64, bool) {
	switch i := v.(type) {
	case int:
		return int64(i), true
	case int8:
		return int64(i), true
	case int16:
		return int64(i), true
	case int64:
		return i, true
	case uint:
		return clampUint(uint64(i)), true
	case uint16:
		return int64(i), true
	case uint32:
		return int64(i), true
	case uint64:
		return clampUint(i), true
	case uintptr:
		return clampUint(uint64(i)), true
	}
	return 0, false
}

func clampUint(u uint64) int64 {
	if u > 1 {
		return -1
	}
	return int64(u)
}

// Value returns the ordinal of A.
func (A Logic) Value() uint8 {
	assertLogic(A)
	return uint8(A)
}

// Char returns the canonical character for A.
//
//	Unassigned  => 'U'
//	Unknown     => 'X'
//	Zero        => '0'
//	One         => '1'
//	HighZ       => 'Z'
//	WeakUnknown => 'W'
//	WeakZero    => 'L'
//	WeakOne     => 'H'
//	DontCare    => '-'
func (A Logic) Char() rune {
	assertLogic(A)
	return logicChars[A]
}

func (A Logic) String() string {
	if A > DontCare {
		return fmt.Sprintf("Logic(%d)", uint8(A))
	}
	return string(logicChars[A])
}

// Is01 returns true if A is Zero or One.
func (A Logic) Is01() bool {
	return A == Zero || A == One
}

// Is01 returns true if A is Zero or One.
func Is01(A Logic) bool {
	return A.Is01()
}

// Int converts Zero and One to 0 and 1. Weak values are not accepted.
func (A Logic) Int() (int, error) {
	switch A {
	case Zero:
		return 0, nil
	case One:
		return 1, nil
	}
	return 0, fmt.Errorf("Logic %v cannot be converted to an integer: %w", A, ErrDomain)
}

// Bool converts Zero and One to false and true.
func (A Logic) Bool() (bool, error) {
	i, err := A.Int()
	if err != nil {
		return false, err
	}
	return i == 1, nil
}

func (A Logic) And(B Logic) Logic {
	assertLogic(A)
	assertLogic(B)
	return andTable[A][B]
}

func (A Logic) Or(B Logic) Logic {
	assertLogic(A)
	assertLogic(B)
	return orTable[A][B]
}

func (A Logic) Xor(B Logic) Logic {
	assertLogic(A)
	assertLogic(B)
	return xorTable[A][B]
}

func (A Logic) Not() Logic {
	assertLogic(A)
	return notTable[A]
}
