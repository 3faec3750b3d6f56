package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCG_Recurrence(t *testing.T) {
	l := New(42)
	// (42*9301 + 49297) % 233280 = 439939 % 233280 = 206659
	got := l.Float64()
	assert.Equal(t, int64(206659), l.State())
	assert.InDelta(t, 206659.0/233280.0, got, 1e-15)

	// (206659*9301 + 49297) % 233280
	want := (int64(206659)*9301 + 49297) % 233280
	l.Float64()
	assert.Equal(t, want, l.State())
}

func TestLCG_SameSeedSameSequence(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestLCG_SeedReduction(t *testing.T) {
	big := New(233280*5 + 11)
	small := New(11)
	assert.Equal(t, small.Float64(), big.Float64())

	neg := New(-1)
	assert.Equal(t, int64(233279), neg.State())
}

func TestLCG_Ranges(t *testing.T) {
	l := New(123)
	for i := 0; i < 5000; i++ {
		f := l.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)

		n := l.IntRange(3, 6)
		require.GreaterOrEqual(t, n, 3)
		require.LessOrEqual(t, n, 6)
	}
	assert.Equal(t, 0, l.Intn(0))
	assert.Equal(t, 9, l.IntRange(9, 2))
	assert.Equal(t, "", l.Pick(nil))
}

func TestLCG_Read(t *testing.T) {
	a, b := New(99), New(99)
	p1, p2 := make([]byte, 16), make([]byte, 16)
	n, err := a.Read(p1)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	_, _ = b.Read(p2)
	assert.Equal(t, p1, p2)
}
