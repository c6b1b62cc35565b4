package hdltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitConstruction(t *testing.T) {
	b, err := BitFromChar('0')
	require.NoError(t, err)
	assert.Equal(t, Bit0, b)
	b, err = BitFromChar('1')
	require.NoError(t, err)
	assert.Equal(t, Bit1, b)

	for _, bad := range []rune{'U', 'x', 'Z', 'L', 'H', '-', '2', 0} {
		_, err := BitFromChar(bad)
		assert.ErrorIs(t, err, ErrInvalidValue, "char %q", bad)
	}

	b, err = BitFromInt(1)
	require.NoError(t, err)
	assert.Equal(t, Bit1, b)
	_, err = BitFromInt(2)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = BitFromInt(-1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	assert.Equal(t, Bit0, BitFromBool(false))
	assert.Equal(t, Bit1, BitFromBool(true))
	assert.Equal(t, Bit(0), Bit0)
	assert.Equal(t, uint8(1), Bit1.Value())
}

func TestBitOps(t *testing.T) {
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			x, y := BitFromBool(a), BitFromBool(b)
			assert.Equal(t, BitFromBool(a && b), x.And(y), "%v and %v", x, y)
			assert.Equal(t, BitFromBool(a || b), x.Or(y), "%v or %v", x, y)
			assert.Equal(t, BitFromBool(a != b), x.Xor(y), "%v xor %v", x, y)
		}
		assert.Equal(t, BitFromBool(!a), BitFromBool(a).Not())
	}
}

func TestBitConversions(t *testing.T) {
	assert.Equal(t, 0, Bit0.Int())
	assert.Equal(t, 1, Bit1.Int())
	assert.False(t, Bit0.Bool())
	assert.True(t, Bit1.Bool())
	assert.Equal(t, '0', Bit0.Char())
	assert.Equal(t, "1", Bit1.String())
	assert.True(t, Bit0.Is01())
	assert.True(t, Bit1.Is01())
}

func TestBitLogicConversions(t *testing.T) {
	assert.Equal(t, Zero, Bit0.Logic())
	assert.Equal(t, One, Bit1.Logic())

	b, err := ToBit(Zero)
	require.NoError(t, err)
	assert.Equal(t, Bit0, b)
	b, err = ToBit(One)
	require.NoError(t, err)
	assert.Equal(t, Bit1, b)

	for _, c := range "UXZWLH-" {
		_, err := ToBit(MustLogic(c))
		assert.ErrorIs(t, err, ErrDomain, "ToBit(%c)", c)
	}

	// widening then narrowing is the identity
	for _, b := range []Bit{Bit0, Bit1} {
		n, err := ToBit(b.Logic())
		require.NoError(t, err)
		assert.Equal(t, b, n)
	}
}

func TestParseBit(t *testing.T) {
	for _, in := range []any{'1', byte('1'), "1", true, 1, One, Bit1} {
		b, err := ParseBit(in)
		require.NoError(t, err, "%T %v", in, in)
		assert.Equal(t, Bit1, b, "%T %v", in, in)
	}

	_, err := ParseBit(WeakOne)
	assert.ErrorIs(t, err, ErrDomain)
	for _, bad := range []any{'H', "10", 2, -1, 0.0} {
		_, err := ParseBit(bad)
		assert.ErrorIs(t, err, ErrInvalidValue, "%T %v", bad, bad)
	}
}

func TestMustBit(t *testing.T) {
	assert.Equal(t, Bit1, MustBit('1'))
	assert.Panics(t, func() { MustBit('X') })
}
