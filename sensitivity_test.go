package hdltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensitivityEdges(t *testing.T) {
	cases := []struct {
		from, to         Logic
		pos, neg, change bool
	}{
		{Zero, One, true, false, true},
		{WeakZero, WeakOne, true, false, true},
		{Zero, WeakOne, true, false, true},
		{One, Zero, false, true, true},
		{WeakOne, Zero, false, true, true},
		{Unassigned, One, false, false, true},
		{HighZ, One, false, false, true},
		{One, One, false, false, false},
		{One, WeakOne, false, false, true},
	}
	for _, c := range cases {
		r := NewRegisterInit("s", c.from)
		require.NoError(t, r.Set(c.to))
		r.Update()

		pos, err := NewSensitivity(Posedge, r)
		require.NoError(t, err)
		neg, err := NewSensitivity(Negedge, r)
		require.NoError(t, err)
		chg, err := NewSensitivity(AnyChange, r)
		require.NoError(t, err)

		assert.Equal(t, c.pos, pos.Triggered(), "posedge %v -> %v", c.from, c.to)
		assert.Equal(t, c.neg, neg.Triggered(), "negedge %v -> %v", c.from, c.to)
		assert.Equal(t, c.change, chg.Triggered(), "change %v -> %v", c.from, c.to)
		assert.Equal(t, c.pos || c.neg, SensitivityClause{pos, neg}.Triggered())
	}
}

func TestSensitivityLevels(t *testing.T) {
	w := NewWire("w", Const(WeakOne))
	w.Update()
	hi, err := NewSensitivity(Poslevel, w)
	require.NoError(t, err)
	lo, err := NewSensitivity(Neglevel, w)
	require.NoError(t, err)
	assert.True(t, hi.Triggered())
	assert.False(t, lo.Triggered())
	assert.True(t, SensitivityClause{lo, hi}.Triggered())
	assert.False(t, SensitivityClause{}.Triggered())
}

func TestNewSensitivityInvalid(t *testing.T) {
	_, err := NewSensitivity(Posedge, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewSensitivity(SensitivityQualifier(9), NewWire("w"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "posedge", Posedge.String())
	assert.Equal(t, "SensitivityQualifier(9)", SensitivityQualifier(9).String())
}
