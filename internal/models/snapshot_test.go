package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySnapshot(t *testing.T) {
	snap := EmptySnapshot("XYZ")
	assert.Equal(t, "XYZ", snap.Ticker)
	assert.Equal(t, "XYZ", snap.Name)
	assert.Equal(t, "Unknown", snap.Sector)
	assert.True(t, snap.IsEmpty())
}

func TestIsEmpty(t *testing.T) {
	withPrice := EmptySnapshot("A")
	withPrice.Price = Float64(10)
	assert.False(t, withPrice.IsEmpty())

	// A reported zero is a value, not an absence.
	withZero := EmptySnapshot("B")
	withZero.TotalDebt = Float64(0)
	assert.False(t, withZero.IsEmpty())

	withHistory := EmptySnapshot("C")
	withHistory.History = []PricePoint{{Close: 1}}
	assert.False(t, withHistory.IsEmpty())
}

func TestDebtToCash(t *testing.T) {
	snap := EmptySnapshot("D")
	assert.Nil(t, snap.DebtToCash())

	snap.TotalDebt = Float64(50)
	assert.Nil(t, snap.DebtToCash(), "missing cash yields no ratio")

	snap.TotalCash = Float64(0)
	assert.Nil(t, snap.DebtToCash(), "zero cash yields no ratio")

	snap.TotalCash = Float64(100)
	ratio := snap.DebtToCash()
	require.NotNil(t, ratio)
	assert.Equal(t, 0.5, *ratio)

	// Zero debt against real cash is a legitimate 0x ratio.
	snap.TotalDebt = Float64(0)
	ratio = snap.DebtToCash()
	require.NotNil(t, ratio)
	assert.Zero(t, *ratio)
}

func TestParseTradingProfile(t *testing.T) {
	tests := []struct {
		input string
		want  TradingProfile
	}{
		{"value", ProfileValue},
		{"long-term", ProfileValue},
		{"Speculative", ProfileSpeculative},
		{"SHORT-TERM", ProfileSpeculative},
		{"balanced", ProfileBalanced},
		{"", ProfileBalanced},
		{"garbage", ProfileBalanced},
		{"  value  ", ProfileValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTradingProfile(tt.input), "input=%q", tt.input)
	}
}

func TestTierColor(t *testing.T) {
	assert.Equal(t, "green", TierGood.Color())
	assert.Equal(t, "yellow", TierNeutral.Color())
	assert.Equal(t, "red", TierBad.Color())
	assert.Equal(t, "gray", TierUnknown.Color())
	assert.Equal(t, "gray", Tier("bogus").Color())
}
