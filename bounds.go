package hdltypes

import (
	"fmt"
	"math"
)

// Range is an inclusive pair of HDL index bounds. It is ascending when
// Left <= Right ("to") and descending otherwise ("downto"). A Range always
// holds at least one index.
type Range struct {
	Left  int
	Right int
}

func (R Range) Ascending() bool {
	return R.Left <= R.Right
}

func (R Range) Low() int {
	if R.Ascending() {
		return R.Left
	}
	return R.Right
}

func (R Range) High() int {
	if R.Ascending() {
		return R.Right
	}
	return R.Left
}

func (R Range) Length() int {
	return R.High() - R.Low() + 1
}

// valid fails with ErrInvalidArgument when the length of R does not fit
// in an int.
func (R Range) valid() error {
	if d := R.High() - R.Low(); d < 0 || d == math.MaxInt {
		return fmt.Errorf("bounds %v span more than %d elements: %w", R, math.MaxInt, ErrInvalidArgument)
	}
	return nil
}

// Has reports whether index i lies within R.
func (R Range) Has(i int) bool {
	return R.Low() <= i && i <= R.High()
}

// Contains reports whether every index of S lies within R.
func (R Range) Contains(S Range) bool {
	return R.Low() <= S.Low() && S.High() <= R.High()
}

// offset translates index i into a storage offset, counting from Left in
// the direction of R.
func (R Range) offset(i int) int {
	if R.Ascending() {
		return i - R.Left
	}
	return R.Left - i
}

// index is the inverse of offset.
func (R Range) index(off int) int {
	if R.Ascending() {
		return R.Left + off
	}
	return R.Left - off
}

func (R Range) String() string {
	if R.Ascending() {
		return fmt.Sprintf("(%d to %d)", R.Left, R.Right)
	}
	return fmt.Sprintf("(%d downto %d)", R.Left, R.Right)
}

// subRange validates S as a window of R: same direction, contained. A
// single-index range counts as ascending.
func (R Range) subRange(S Range) error {
	if !boundsCheck {
		return nil
	}
	if R.Ascending() != S.Ascending() {
		return fmt.Errorf("slice %v direction doesn't match %v: %w", S, R, ErrInvalidArgument)
	}
	if !R.Contains(S) {
		return fmt.Errorf("slice %v not within %v: %w", S, R, ErrOutOfRange)
	}
	return nil
}
