package hdltypes

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogicVector(t *testing.T) {
	v, err := ParseLogicVector("UX01_ZWLH -")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Left())
	assert.Equal(t, 9, v.Right())
	assert.Equal(t, "UX01ZWLH-", FormatLogic(v))

	d, err := ParseLogicVectorBounds(3, 0, "10zx")
	require.NoError(t, err)
	msb, _ := d.At(3)
	lsb, _ := d.At(0)
	assert.Equal(t, One, msb, "first character is the left index")
	assert.Equal(t, Unknown, lsb)
	assert.Equal(t, "10ZX", FormatLogic(d))

	_, err = ParseLogicVector("01Q")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseLogicVector("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ParseLogicVectorBounds(7, 0, "0101")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseBitVector(t *testing.T) {
	b, err := ParseBitVector("1010_0001")
	require.NoError(t, err)
	assert.Equal(t, 8, b.Length())
	assert.Equal(t, "10100001", FormatBits(b))

	_, err = ParseBitVector("10X")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseBitVector("  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	d, err := ParseBitVectorBounds(1, 0, "01")
	require.NoError(t, err)
	x, _ := d.At(0)
	assert.Equal(t, Bit1, x)
}

func TestBitLogicVectorConversion(t *testing.T) {
	b, err := ParseBitVectorBounds(3, 0, "1100")
	require.NoError(t, err)
	l := ToLogicVector(b)
	assert.Equal(t, b.Range(), l.Range())
	assert.Equal(t, "1100", FormatLogic(l))

	back, err := ToBitVector(l)
	require.NoError(t, err)
	assert.Equal(t, slices.Collect(b.Values()), slices.Collect(back.Values()))

	weak, err := ParseLogicVectorBounds(3, 0, "1H00")
	require.NoError(t, err)
	_, err = ToBitVector(weak)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestElementwiseOps(t *testing.T) {
	a, err := ParseLogicVectorBounds(7, 0, "01XZWLH-")
	require.NoError(t, err)
	b, err := ParseLogicVectorBounds(7, 0, "11111111")
	require.NoError(t, err)

	and, err := AndVec(a, b)
	require.NoError(t, err)
	assert.Equal(t, "01XXX01X", FormatLogic(and))
	assert.Equal(t, a.Range(), and.Range())

	or, err := OrVec(a, b)
	require.NoError(t, err)
	assert.Equal(t, "11111111", FormatLogic(or))

	xor, err := XorVec(a, b)
	require.NoError(t, err)
	assert.Equal(t, "10XXX10X", FormatLogic(xor))

	assert.Equal(t, "10XXX10X", FormatLogic(NotVec(a)))

	short, err := ParseLogicVector("01")
	require.NoError(t, err)
	_, err = AndVec(a, short)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = OrVec(a, short)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = XorVec(a, short)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestElementwiseIntoViews(t *testing.T) {
	acc, err := ParseLogicVectorBounds(7, 0, "UUUUUUUU")
	require.NoError(t, err)
	hi, err := acc.Slice(7, 4)
	require.NoError(t, err)
	lo, err := acc.Slice(3, 0)
	require.NoError(t, err)

	x, _ := ParseLogicVector("0011")
	y, _ := ParseLogicVector("0101")

	require.NoError(t, AndInto(hi, x, y))
	require.NoError(t, XorInto(lo, x, y))
	assert.Equal(t, "00010110", FormatLogic(acc))

	require.NoError(t, OrInto(hi, x, y))
	assert.Equal(t, "01110110", FormatLogic(acc))

	// the destination may alias an operand
	require.NoError(t, NotInto(lo, lo))
	assert.Equal(t, "01111001", FormatLogic(acc))

	assert.ErrorIs(t, AndInto(acc.View(), x, y), ErrInvalidArgument)
	assert.ErrorIs(t, NotInto(hi, acc), ErrInvalidArgument)
	assert.Equal(t, "01111001", FormatLogic(acc), "failed ops write nothing")
}

func TestReductions(t *testing.T) {
	sizes := []int{1, 8, 61, 212}

	for _, size := range sizes {
		v := NewVector[Logic](size-1, 0)
		v.View().Fill(Zero)
		require.NoError(t, v.Set(size-1, One))

		assert.Equal(t, One, ReduceOr(v), "or, size = %d", size)
		assert.Equal(t, Zero, ReduceNor(v), "nor, size = %d", size)
		assert.Equal(t, One, ReduceXor(v), "odd parity, size = %d", size)
		assert.Equal(t, Zero, ReduceXnor(v), "even parity, size = %d", size)
		if size > 1 {
			assert.Equal(t, Zero, ReduceAnd(v), "and, size = %d", size)
			assert.Equal(t, One, ReduceNand(v), "nand, size = %d", size)
		}

		v.View().Fill(One)
		assert.Equal(t, One, ReduceAnd(v), "and, size = %d", size)
		assert.Equal(t, Zero, ReduceNand(v), "nand, size = %d", size)

		exp, notExp := Zero, One
		if size%2 != 0 {
			exp, notExp = One, Zero
		}
		assert.Equal(t, exp, ReduceXor(v), "parity, size = %d", size)
		assert.Equal(t, notExp, ReduceXnor(v), "parity, size = %d", size)
	}
}

func TestReductionsWithMetaValues(t *testing.T) {
	cases := []struct {
		lit          string
		and, or, xor Logic
	}{
		{"1H", One, One, Zero},
		{"L", Zero, Zero, Zero},
		{"H", One, One, One},
		{"1Z", Unknown, One, Unknown},
		{"0U", Zero, Unassigned, Unassigned},
		{"1U", Unassigned, One, Unassigned},
		{"0-", Zero, Unknown, Unknown},
	}
	for _, c := range cases {
		v, err := ParseLogicVector(c.lit)
		require.NoError(t, err)
		assert.Equal(t, c.and, ReduceAnd(v), "and %s", c.lit)
		assert.Equal(t, c.or, ReduceOr(v), "or %s", c.lit)
		assert.Equal(t, c.xor, ReduceXor(v), "xor %s", c.lit)
	}
}

func TestFormatViews(t *testing.T) {
	v, err := ParseLogicVectorBounds(7, 0, strings.Repeat("01", 4))
	require.NoError(t, err)
	w, err := v.ConstSlice(5, 2)
	require.NoError(t, err)
	assert.Equal(t, "0101", FormatLogic(w))
}
