package hdltypes

import (
	"log/slog"
)

// Module groups registers, wires and sub-modules so they can be stepped
// together. Everything runs on the caller's goroutine.
type Module struct {
	Name       string
	Registers  []*Register[Logic]
	Wires      []*Wire
	SubModules []*Module

	// Logger receives a debug record for every changed signal. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Step runs one delta cycle over the whole tree: every register commits its
// staged value first, then every wire is resolved, so wires see the new
// register values. It returns how many signals changed.
func (A *Module) Step() int {
	return A.updateRegisters(A.logger()) + A.propagateWires(A.logger())
}

// Settle repeats Step until nothing changes or limit steps have run, and
// returns the number of steps taken.
func (A *Module) Settle(limit int) int {
	n := 0
	for n < limit {
		n++
		if A.Step() == 0 {
			break
		}
	}
	return n
}

func (A *Module) logger() *slog.Logger {
	if A.Logger != nil {
		return A.Logger
	}
	return slog.Default()
}

func (A *Module) updateRegisters(log *slog.Logger) (changed int) {
	for _, sm := range A.SubModules {
		changed += sm.updateRegisters(log)
	}

	for _, r := range A.Registers {
		if r.Update() {
			changed++
			log.Debug("register changed",
				"module", A.Name, "register", r.Name,
				"from", r.LastValue().String(), "to", r.Value().String())
		}
	}
	return
}

func (A *Module) propagateWires(log *slog.Logger) (changed int) {
	for _, sm := range A.SubModules {
		changed += sm.propagateWires(log)
	}

	for _, w := range A.Wires {
		if w.Update() {
			changed++
			log.Debug("wire changed",
				"module", A.Name, "wire", w.Name,
				"from", w.LastValue().String(), "to", w.Value().String())
		}
	}
	return
}

// Count returns the number of registers and wires in the tree.
func (A *Module) Count() (numRegisters, numWires int) {
	numRegisters = len(A.Registers)
	numWires = len(A.Wires)

	for _, sm := range A.SubModules {
		r, w := sm.Count()
		numRegisters += r
		numWires += w
	}

	return
}
