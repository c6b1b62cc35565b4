package hdltypes

import (
	"fmt"
)

// Register holds a value that changes only when Update commits the value
// staged by Set, like a signal assignment taking effect after a delta cycle.
// All values start as the zero value of T, Unassigned for Logic.
type Register[T comparable] struct {
	Name         string
	currentValue T
	nextValue    T
	lastValue    T
	modified     bool
}

func NewRegister[T comparable](name string) *Register[T] {
	return &Register[T]{Name: name}
}

// NewRegisterInit returns a Register whose current value is already v.
func NewRegisterInit[T comparable](name string, v T) *Register[T] {
	return &Register[T]{Name: name, currentValue: v, nextValue: v, lastValue: v}
}

// Set stages v for the next Update. Setting a register twice in the same
// step is an error.
func (A *Register[T]) Set(v T) error {
	if A.modified {
		return fmt.Errorf("register %s set multiple times in same step: %w", A.Name, ErrInvalidArgument)
	}

	A.nextValue = v
	A.modified = true

	return nil
}

// Update commits a staged value and reports whether the value changed.
func (A *Register[T]) Update() bool {
	if !A.modified {
		return false
	}
	A.lastValue = A.currentValue
	A.currentValue = A.nextValue
	A.modified = false
	return A.lastValue != A.currentValue
}

func (A *Register[T]) Value() T {
	return A.currentValue
}

func (A *Register[T]) LastValue() T {
	return A.lastValue
}

// Pending reports whether a value is staged.
func (A *Register[T]) Pending() bool {
	return A.modified
}
