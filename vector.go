package hdltypes

import (
	"fmt"
	"iter"
)

// Source is an ordered, finite, restartable sequence of known length. Vector,
// View and ConstView are all Sources.
type Source[T any] interface {
	Len() int
	Values() iter.Seq[T]
}

// storage is implemented by Sources backed by contiguous memory, so bulk
// copies between them can use copy and handle overlap.
type storage[T any] interface {
	window() []T
}

// Vector is an array indexed by an HDL Range in either direction. It owns
// its storage, which is allocated once at construction and never resized, so
// Views taken from it stay valid for the Vector's whole life.
type Vector[T any] struct {
	bounds Range
	data   []T
}

// NewVector allocates a Vector of zero-valued elements indexed from left to
// right. For Logic that is Unassigned, for Bit it is Bit0. It panics if the
// bounds describe more elements than an int can count.
func NewVector[T any](left, right int) *Vector[T] {
	X := &Vector[T]{bounds: Range{Left: left, Right: right}}
	if err := X.bounds.valid(); err != nil {
		panic(err)
	}
	X.data = make([]T, X.bounds.Length())
	return X
}

func (X *Vector[T]) Range() Range    { return X.bounds }
func (X *Vector[T]) Left() int       { return X.bounds.Left }
func (X *Vector[T]) Right() int      { return X.bounds.Right }
func (X *Vector[T]) Low() int        { return X.bounds.Low() }
func (X *Vector[T]) High() int       { return X.bounds.High() }
func (X *Vector[T]) Length() int     { return len(X.data) }
func (X *Vector[T]) Ascending() bool { return X.bounds.Ascending() }

// Len is Length, to satisfy Source.
func (X *Vector[T]) Len() int { return len(X.data) }

func (X *Vector[T]) index(i int) (int, error) {
	off := X.bounds.offset(i)
	if boundsCheck && (off < 0 || off >= len(X.data)) {
		return 0, fmt.Errorf("index %d not within %v: %w", i, X.bounds, ErrOutOfRange)
	}
	return off, nil
}

// At returns the element at HDL index i.
func (X *Vector[T]) At(i int) (T, error) {
	off, err := X.index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return X.data[off], nil
}

// Set writes v at HDL index i.
func (X *Vector[T]) Set(i int, v T) error {
	off, err := X.index(i)
	if err != nil {
		return err
	}
	X.data[off] = v
	return nil
}

// Ptr returns a pointer to the element at HDL index i for in-place updates.
func (X *Vector[T]) Ptr(i int) (*T, error) {
	off, err := X.index(i)
	if err != nil {
		return nil, err
	}
	return &X.data[off], nil
}

// Slice returns a mutable View over left..right. The bounds must run in the
// same direction as X (ErrInvalidArgument) and lie within X (ErrOutOfRange).
func (X *Vector[T]) Slice(left, right int) (View[T], error) {
	S := Range{Left: left, Right: right}
	if err := X.bounds.subRange(S); err != nil {
		return View[T]{}, err
	}
	return View[T]{bounds: S, vec: X}, nil
}

// ConstSlice is Slice returning a read-only view.
func (X *Vector[T]) ConstSlice(left, right int) (ConstView[T], error) {
	v, err := X.Slice(left, right)
	if err != nil {
		return ConstView[T]{}, err
	}
	return v.Const(), nil
}

// View returns a mutable View over the whole of X.
func (X *Vector[T]) View() View[T] {
	return View[T]{bounds: X.bounds, vec: X}
}

// ConstView returns a read-only View over the whole of X.
func (X *Vector[T]) ConstView() ConstView[T] {
	return ConstView[T]{bounds: X.bounds, vec: X}
}

// Values yields the elements in storage order, left to right.
func (X *Vector[T]) Values() iter.Seq[T] {
	return values(X.data)
}

// All yields HDL index and element pairs in storage order.
func (X *Vector[T]) All() iter.Seq2[int, T] {
	return all(X.bounds, X.data)
}

func (X *Vector[T]) window() []T {
	return X.data
}

func (X *Vector[T]) String() string {
	return formatRange(X.bounds, X.data)
}

func values[T any](w []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range w {
			if !yield(v) {
				return
			}
		}
	}
}

func all[T any](R Range, w []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for off, v := range w {
			if !yield(R.index(off), v) {
				return
			}
		}
	}
}

func formatRange[T any](R Range, w []T) string {
	return fmt.Sprintf("%v%v", R, w)
}
