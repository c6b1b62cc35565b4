package hdltypes

import (
	"fmt"
	"iter"
	"slices"
)

// ToVector copies src into a new Vector indexed 1 to len(src).
func ToVector[T any](src []T) (*Vector[T], error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("cannot build a vector from an empty source: %w", ErrInvalidArgument)
	}
	return ToVectorBounds(1, len(src), src)
}

// ToVectorBounds copies src into a new Vector indexed left to right. The
// bounds must describe exactly len(src) elements. For a fixed size array
// pass arr[:].
func ToVectorBounds[T any](left, right int, src []T) (*Vector[T], error) {
	R := Range{Left: left, Right: right}
	if err := R.valid(); err != nil {
		return nil, err
	}
	if R.Length() != len(src) {
		return nil, fmt.Errorf("bounds %v hold %d elements, source has %d: %w",
			R, R.Length(), len(src), ErrInvalidArgument)
	}
	X := &Vector[T]{bounds: R, data: make([]T, len(src))}
	copy(X.data, src)
	return X, nil
}

// CollectVector gathers a finite sequence into a new Vector indexed 1 to n.
func CollectVector[T any](seq iter.Seq[T]) (*Vector[T], error) {
	return ToVector(slices.Collect(seq))
}

// CollectVectorBounds gathers a finite sequence into a new Vector indexed
// left to right.
func CollectVectorBounds[T any](left, right int, seq iter.Seq[T]) (*Vector[T], error) {
	return ToVectorBounds(left, right, slices.Collect(seq))
}

// CopyVector builds a new Vector with the bounds and a copy of the contents
// of src.
func CopyVector[T any](src interface {
	Source[T]
	Range() Range
}) *Vector[T] {
	R := src.Range()
	X := &Vector[T]{bounds: R, data: make([]T, 0, R.Length())}
	X.data = slices.AppendSeq(X.data, src.Values())
	return X
}

// MapVector converts each element of src with f into a new Vector indexed 1
// to len(src).
func MapVector[S, T any](src []S, f func(S) T) (*Vector[T], error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("cannot build a vector from an empty source: %w", ErrInvalidArgument)
	}
	return MapVectorBounds(1, len(src), src, f)
}

// MapVectorBounds is MapVector with explicit bounds.
func MapVectorBounds[S, T any](left, right int, src []S, f func(S) T) (*Vector[T], error) {
	return ConvertVectorBounds(left, right, src, func(s S) (T, error) {
		return f(s), nil
	})
}

// ConvertVectorBounds is MapVectorBounds for a fallible conversion. The
// first conversion error is returned, wrapped with the failing position.
func ConvertVectorBounds[S, T any](left, right int, src []S, f func(S) (T, error)) (*Vector[T], error) {
	R := Range{Left: left, Right: right}
	if err := R.valid(); err != nil {
		return nil, err
	}
	if R.Length() != len(src) {
		return nil, fmt.Errorf("bounds %v hold %d elements, source has %d: %w",
			R, R.Length(), len(src), ErrInvalidArgument)
	}
	X := &Vector[T]{bounds: R, data: make([]T, len(src))}
	for off, s := range src {
		v, err := f(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", R.index(off), err)
		}
		X.data[off] = v
	}
	return X, nil
}
