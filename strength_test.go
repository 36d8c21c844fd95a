package kasuari

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrengthOrdering(t *testing.T) {
	require.Less(t, Weak, Medium)
	require.Less(t, Medium, Strong)
	require.Less(t, Strong, Required)
}

func TestNewStrengthClamps(t *testing.T) {
	// Each tier clamps to [0, tierClamp] before combining.
	s := NewStrength(1, 0, 0)
	require.EqualValues(t, 1e6, s)

	s = NewStrength(2000, 0, 0)
	require.Less(t, s, Required)
	require.EqualValues(t, tierClamp*1e6, s)

	s = NewStrength(-5, 0, 0)
	require.EqualValues(t, 0, s)
}

func TestWeightedStrength(t *testing.T) {
	s := NewWeightedStrength(1, 0, 0, 2)
	require.EqualValues(t, 2e6, s)

	s = NewWeightedStrength(1, 0, 0, -1)
	require.EqualValues(t, 0, s)
}

func TestStrengthNeverReachesRequired(t *testing.T) {
	s := NewStrength(1000, 1000, 1000)
	require.Less(t, s, Required)
}

func TestStrengthIsRequired(t *testing.T) {
	require.True(t, Required.IsRequired())
	require.False(t, Strong.IsRequired())
}
