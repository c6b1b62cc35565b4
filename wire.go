package hdltypes

// Driver is anything that drives a value onto a Wire.
type Driver interface {
	Value() Logic
}

// Const is a Driver that always drives the same value, e.g. a pull-down
// (WeakZero) or a tie-off (One).
type Const Logic

func (A Const) Value() Logic { return Logic(A) }

var resolveTable = [9][9]Logic{
	//  U   X   0   1   Z   W   L   H   -
	{lU, lU, lU, lU, lU, lU, lU, lU, lU}, // U
	{lU, lX, lX, lX, lX, lX, lX, lX, lX}, // X
	{lU, lX, l0, lX, l0, l0, l0, l0, lX}, // 0
	{lU, lX, lX, l1, l1, l1, l1, l1, lX}, // 1
	{lU, lX, l0, l1, lZ, lW, lL, lH, lX}, // Z
	{lU, lX, l0, l1, lW, lW, lW, lW, lX}, // W
	{lU, lX, l0, l1, lL, lW, lL, lW, lX}, // L
	{lU, lX, l0, l1, lH, lW, lW, lH, lX}, // H
	{lU, lX, lX, lX, lX, lX, lX, lX, lX}, // -
}

// Resolve combines two values driven onto the same net, following the
// std_logic resolution function. Strong values beat weak ones, HighZ yields
// to anything, and conflicting values of equal strength become unknown.
func Resolve(A, B Logic) Logic {
	assertLogic(A)
	assertLogic(B)
	return resolveTable[A][B]
}

// ResolveAll resolves any number of driven values. No drivers leaves the
// net floating at HighZ; a single driver resolves to its own value.
func ResolveAll(vs ...Logic) Logic {
	if len(vs) == 1 {
		return vs[0]
	}
	Z := HighZ
	for _, v := range vs {
		Z = Resolve(Z, v)
	}
	return Z
}

// Wire is a resolved net with any number of drivers.
type Wire struct {
	Name         string
	drivers      []Driver
	currentValue Logic
	lastValue    Logic
}

func NewWire(name string, drivers ...Driver) *Wire {
	A := &Wire{Name: name}
	A.drivers = append(A.drivers, drivers...)
	return A
}

// Connect adds a driver. The new value is seen after the next Update.
func (A *Wire) Connect(d Driver) {
	A.drivers = append(A.drivers, d)
}

// Update recomputes the resolved value and reports whether it changed.
func (A *Wire) Update() bool {
	var v Logic
	switch len(A.drivers) {
	case 0:
		v = HighZ
	case 1:
		v = A.drivers[0].Value()
	default:
		v = HighZ
		for _, d := range A.drivers {
			v = Resolve(v, d.Value())
		}
	}

	A.lastValue = A.currentValue
	A.currentValue = v
	return A.lastValue != A.currentValue
}

// Value returns the value resolved by the last Update. A Wire is itself a
// Driver, so nets can be chained.
func (A *Wire) Value() Logic {
	return A.currentValue
}

func (A *Wire) LastValue() Logic {
	return A.lastValue
}
