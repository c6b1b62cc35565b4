/*
Package hdltypes provides the value types a hardware description language
simulator is built from.

Logic is the nine-valued std_ulogic of VHDL and Bit its strict two-valued
subset. Vector is an array indexed by an arbitrary ascending ("to") or
descending ("downto") integer range, and View and ConstView are windows into a
Vector that never copy its storage:

	v := hdltypes.NewVector[hdltypes.Logic](7, 0)
	nibble, err := v.Slice(3, 0)
	if err != nil {
		return err
	}
	err = nibble.AssignSlice([]hdltypes.Logic{hdltypes.One, hdltypes.Zero, hdltypes.One, hdltypes.One})

Every index and every slice is checked against the bounds of the container it
addresses. Building with the hdltypes_nocheck tag removes these checks from
verified hot paths; building with hdltypes_debug enables internal invariant
assertions.

Wire, Register and Module use these values to model resolved nets and
two-phase signal updates. None of the types in this package are safe for
concurrent use.
*/
package hdltypes
