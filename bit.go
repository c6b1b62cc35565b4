package hdltypes

import (
	"fmt"
)

// Bit is a strict two-valued logic value. A Bit always widens to a Logic;
// a Logic narrows to a Bit only when it is Zero or One.
type Bit uint8

const (
	Bit0 Bit = iota
	Bit1
)

// BitFromChar converts '0' and '1' to Bit0 and Bit1.
func BitFromChar(c rune) (Bit, error) {
	switch c {
	case '0':
		return Bit0, nil
	case '1':
		return Bit1, nil
	}
	return Bit0, fmt.Errorf("%q is not a Bit: %w", c, ErrInvalidValue)
}

// BitFromInt converts 0 and 1 to Bit0 and Bit1.
func BitFromInt(i int) (Bit, error) {
	switch i {
	case 0:
		return Bit0, nil
	case 1:
		return Bit1, nil
	}
	return Bit0, fmt.Errorf("%d is not a Bit: %w", i, ErrInvalidValue)
}

func BitFromBool(b bool) Bit {
	if b {
		return Bit1
	}
	return Bit0
}

// MustBit is BitFromChar for literals known to be valid.
func MustBit(c rune) Bit {
	A, err := BitFromChar(c)
	if err != nil {
		panic(err)
	}
	return A
}

// ToBit narrows a Logic. Only Zero and One convert; everything else,
// including the weak WeakZero and WeakOne, fails with ErrDomain.
func ToBit(A Logic) (Bit, error) {
	switch A {
	case Zero:
		return Bit0, nil
	case One:
		return Bit1, nil
	}
	return Bit0, fmt.Errorf("Logic %v cannot be converted to Bit: %w", A, ErrDomain)
}

// ParseBit is the Bit counterpart of ParseLogic. A Logic argument is
// narrowed with ToBit.
func ParseBit(v any) (Bit, error) {
	switch c := v.(type) {
	case Bit:
		if c > Bit1 {
			return Bit0, fmt.Errorf("ordinal %d is not a Bit: %w", uint8(c), ErrInvalidValue)
		}
		return c, nil
	case Logic:
		return ToBit(c)
	case bool:
		return BitFromBool(c), nil
	case rune:
		return BitFromChar(c)
	case byte:
		return BitFromChar(rune(c))
	case string:
		r := []rune(c)
		if len(r) != 1 {
			return Bit0, fmt.Errorf("%q is not a Bit: %w", c, ErrInvalidValue)
		}
		return BitFromChar(r[0])
	}
	i, ok := asInt(v)
	if !ok {
		return Bit0, fmt.Errorf("%T is not convertible to Bit: %w", v, ErrInvalidValue)
	}
	switch i {
	case 0:
		return Bit0, nil
	case 1:
		return Bit1, nil
	}
	return Bit0, fmt.Errorf("%v is not a Bit: %w", v, ErrInvalidValue)
}

func (A Bit) Value() uint8 {
	assertBit(A)
	return uint8(A)
}

// Logic widens A to Zero or One.
func (A Bit) Logic() Logic {
	if A == Bit1 {
		return One
	}
	return Zero
}

func (A Bit) Char() rune {
	if A == Bit1 {
		return '1'
	}
	return '0'
}

func (A Bit) String() string {
	return string(A.Char())
}

// Is01 is always true for a Bit.
func (A Bit) Is01() bool {
	return true
}

func (A Bit) Int() int {
	if A == Bit1 {
		return 1
	}
	return 0
}

func (A Bit) Bool() bool {
	return A == Bit1
}

func (A Bit) And(B Bit) Bit {
	return BitFromBool(A == Bit1 && B == Bit1)
}

func (A Bit) Or(B Bit) Bit {
	return BitFromBool(A == Bit1 || B == Bit1)
}

func (A Bit) Xor(B Bit) Bit {
	return BitFromBool(A != B)
}

func (A Bit) Not() Bit {
	return BitFromBool(A == Bit0)
}
