package hdltypes

import (
	"fmt"
	"iter"
)

// View is a mutable window over part of a Vector. It never copies: reads and
// writes go straight to the Vector's storage, and indices are translated in
// the Vector's direction. Views are obtained only from Vector.Slice or
// View.Slice, which validate the window. Several Views may alias the same
// elements; writes through them take effect in program order.
type View[T any] struct {
	bounds Range
	vec    *Vector[T]
}

func (X View[T]) Range() Range    { return X.bounds }
func (X View[T]) Left() int       { return X.bounds.Left }
func (X View[T]) Right() int      { return X.bounds.Right }
func (X View[T]) Low() int        { return X.bounds.Low() }
func (X View[T]) High() int       { return X.bounds.High() }
func (X View[T]) Length() int     { return X.bounds.Length() }
func (X View[T]) Ascending() bool { return X.bounds.Ascending() }
func (X View[T]) Len() int        { return X.bounds.Length() }

// Vector returns the Vector X is a window over.
func (X View[T]) Vector() *Vector[T] { return X.vec }

func (X View[T]) check(i int) error {
	if boundsCheck && !X.bounds.Has(i) {
		return fmt.Errorf("index %d not within %v: %w", i, X.bounds, ErrOutOfRange)
	}
	return nil
}

func (X View[T]) At(i int) (T, error) {
	if err := X.check(i); err != nil {
		var zero T
		return zero, err
	}
	return X.vec.At(i)
}

func (X View[T]) Set(i int, v T) error {
	if err := X.check(i); err != nil {
		return err
	}
	return X.vec.Set(i, v)
}

func (X View[T]) Ptr(i int) (*T, error) {
	if err := X.check(i); err != nil {
		return nil, err
	}
	return X.vec.Ptr(i)
}

// Slice narrows X to left..right, which must lie within X.
func (X View[T]) Slice(left, right int) (View[T], error) {
	S := Range{Left: left, Right: right}
	if err := X.vec.bounds.subRange(S); err != nil {
		return View[T]{}, err
	}
	if boundsCheck && !X.bounds.Contains(S) {
		return View[T]{}, fmt.Errorf("slice %v not within %v: %w", S, X.bounds, ErrOutOfRange)
	}
	return View[T]{bounds: S, vec: X.vec}, nil
}

func (X View[T]) ConstSlice(left, right int) (ConstView[T], error) {
	v, err := X.Slice(left, right)
	if err != nil {
		return ConstView[T]{}, err
	}
	return v.Const(), nil
}

// Const returns the read-only counterpart of X.
func (X View[T]) Const() ConstView[T] {
	return ConstView[T]{bounds: X.bounds, vec: X.vec}
}

// Assign copies src into X in left to right order. The length is checked
// before anything is written, so a failed Assign leaves X untouched.
func (X View[T]) Assign(src Source[T]) error {
	if err := X.checkLen(src.Len()); err != nil {
		return err
	}
	w := X.window()
	if s, ok := src.(storage[T]); ok {
		copy(w, s.window())
		return nil
	}
	i := 0
	for v := range src.Values() {
		if i == len(w) {
			break
		}
		w[i] = v
		i++
	}
	return nil
}

// AssignSlice copies src into X.
func (X View[T]) AssignSlice(src []T) error {
	if err := X.checkLen(len(src)); err != nil {
		return err
	}
	copy(X.window(), src)
	return nil
}

// AssignSeq copies a sequence of unknown length into X. The sequence is
// buffered first so a length mismatch still leaves X untouched. Reading
// stops at the first element past the length of X.
func (X View[T]) AssignSeq(seq iter.Seq[T]) error {
	buf := make([]T, 0, X.Len())
	for v := range seq {
		if len(buf) == X.Len() {
			return fmt.Errorf("slice %v has length %d, source is longer: %w",
				X.bounds, X.Len(), ErrInvalidArgument)
		}
		buf = append(buf, v)
	}
	return X.AssignSlice(buf)
}

// Fill sets every element of X to v.
func (X View[T]) Fill(v T) {
	w := X.window()
	for i := range w {
		w[i] = v
	}
}

func (X View[T]) checkLen(n int) error {
	if boundsCheck && n != X.Len() {
		return fmt.Errorf("slice %v has length %d, source has length %d: %w",
			X.bounds, X.Len(), n, ErrInvalidArgument)
	}
	return nil
}

func (X View[T]) Values() iter.Seq[T] {
	return values(X.window())
}

func (X View[T]) All() iter.Seq2[int, T] {
	return all(X.bounds, X.window())
}

func (X View[T]) window() []T {
	return viewWindow(X.vec, X.bounds)
}

func (X View[T]) String() string {
	return formatRange(X.bounds, X.window())
}

// ConstView is the read-only counterpart of View.
type ConstView[T any] struct {
	bounds Range
	vec    *Vector[T]
}

func (X ConstView[T]) Range() Range    { return X.bounds }
func (X ConstView[T]) Left() int       { return X.bounds.Left }
func (X ConstView[T]) Right() int      { return X.bounds.Right }
func (X ConstView[T]) Low() int        { return X.bounds.Low() }
func (X ConstView[T]) High() int       { return X.bounds.High() }
func (X ConstView[T]) Length() int     { return X.bounds.Length() }
func (X ConstView[T]) Ascending() bool { return X.bounds.Ascending() }
func (X ConstView[T]) Len() int        { return X.bounds.Length() }

func (X ConstView[T]) At(i int) (T, error) {
	return View[T](X).At(i)
}

func (X ConstView[T]) Slice(left, right int) (ConstView[T], error) {
	v, err := View[T](X).Slice(left, right)
	if err != nil {
		return ConstView[T]{}, err
	}
	return v.Const(), nil
}

func (X ConstView[T]) Values() iter.Seq[T] {
	return values(X.window())
}

func (X ConstView[T]) All() iter.Seq2[int, T] {
	return all(X.bounds, X.window())
}

func (X ConstView[T]) window() []T {
	return viewWindow(X.vec, X.bounds)
}

func (X ConstView[T]) String() string {
	return formatRange(X.bounds, X.window())
}

// viewWindow is the part of vec's storage that S covers. S always runs in
// vec's direction, so the offset of S.Left never exceeds that of S.Right.
func viewWindow[T any](vec *Vector[T], S Range) []T {
	lo := vec.bounds.offset(S.Left)
	hi := vec.bounds.offset(S.Right)
	return vec.data[lo : hi+1]
}
