package kasuari

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstraintDefaultsToRequired(t *testing.T) {
	a, b := NewVariable("a"), NewVariable("b")
	c := a.EqualTo(b.Expr())
	require.True(t, c.strength.IsRequired())
}

func TestConstraintStrengthIsImmutable(t *testing.T) {
	a, b := NewVariable("a"), NewVariable("b")
	required := a.EqualTo(b.Expr())
	weak := required.Strength(Weak)

	require.True(t, required.strength.IsRequired())
	require.EqualValues(t, Weak, weak.strength)
	require.NotSame(t, required, weak)
}

func TestConstraintFromTerms(t *testing.T) {
	a := NewVariable("a")
	c := NewConstraintFromTerms(OpGreaterThanOrEqual, -10, a.Term(1))
	require.Equal(t, OpGreaterThanOrEqual, c.op)
	require.InDelta(t, -10, c.expr.Constant, epsilon)
}
