package hdltypes

import (
	"fmt"
)

// Signal is a Driver that also remembers the value it had before its last
// update. Register and Wire are Signals.
type Signal interface {
	Driver
	LastValue() Logic
}

type SensitivityQualifier int

const (
	AnyChange SensitivityQualifier = iota
	Posedge
	Negedge
	Poslevel
	Neglevel
)

var qualifierNames = [...]string{"any", "posedge", "negedge", "poslevel", "neglevel"}

func (Q SensitivityQualifier) String() string {
	if Q < 0 || int(Q) >= len(qualifierNames) {
		return fmt.Sprintf("SensitivityQualifier(%d)", int(Q))
	}
	return qualifierNames[Q]
}

// Sensitivity watches one signal for a qualified event.
type Sensitivity struct {
	signal    Signal
	qualifier SensitivityQualifier
}

func NewSensitivity(q SensitivityQualifier, sig Signal) (*Sensitivity, error) {
	if q < AnyChange || q > Neglevel {
		return nil, fmt.Errorf("sensitivity qualifier %v: %w", q, ErrInvalidArgument)
	}
	if sig == nil {
		return nil, fmt.Errorf("sensitivity needs a signal: %w", ErrInvalidArgument)
	}
	return &Sensitivity{signal: sig, qualifier: q}, nil
}

// Triggered reports whether the signal's last update matches the qualifier.
// Edges follow rising_edge and falling_edge: weak values count as their
// strong equivalents, so 'L' to 'H' is a rising edge, and anything else
// touching an unknown is not an edge.
func (A *Sensitivity) Triggered() bool {
	cur, last := toX01(A.signal.Value()), toX01(A.signal.LastValue())
	switch A.qualifier {
	case Posedge:
		return last == Zero && cur == One
	case Negedge:
		return last == One && cur == Zero
	case Poslevel:
		return cur == One
	case Neglevel:
		return cur == Zero
	}
	return A.signal.Value() != A.signal.LastValue()
}

// SensitivityClause is a list of sensitivities that are logically OR'ed.
type SensitivityClause []*Sensitivity

func (C SensitivityClause) Triggered() bool {
	for _, s := range C {
		if s.Triggered() {
			return true
		}
	}
	return false
}

func toX01(A Logic) Logic {
	switch A {
	case Zero, WeakZero:
		return Zero
	case One, WeakOne:
		return One
	}
	return Unknown
}
