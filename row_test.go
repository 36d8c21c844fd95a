package kasuari

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowAddTermMergesAndDrops(t *testing.T) {
	a := nextSymbol(kindExternal)

	r := newRow(0)
	r.addTerm(1, a, epsilon)
	r.addTerm(2, a, epsilon)
	require.Len(t, r.terms, 1)
	require.InDelta(t, 3, r.terms[0].coeff, epsilon)

	r.addTerm(-3, a, epsilon)
	require.Empty(t, r.terms)
}

func TestRowSolveFor(t *testing.T) {
	a := nextSymbol(kindExternal)
	b := nextSymbol(kindExternal)

	// 2a + b + 4 = 0  =>  a = -b/2 - 2
	r := newRow(4, a.term(2), b.term(1))
	r.solveFor(a)

	require.Equal(t, -1, r.find(a))
	coeff, ok := r.coeffOf(b)
	require.True(t, ok)
	require.InDelta(t, -0.5, coeff, epsilon)
	require.InDelta(t, -2, r.constant, epsilon)
}

func TestRowSubstitute(t *testing.T) {
	a := nextSymbol(kindExternal)
	b := nextSymbol(kindExternal)
	c := nextSymbol(kindExternal)

	r := newRow(1, a.term(1), b.term(2))
	sub := newRow(3, c.term(1)) // a = c + 3

	r.substitute(a, sub, epsilon)

	require.Equal(t, -1, r.find(a))
	cCoeff, ok := r.coeffOf(c)
	require.True(t, ok)
	require.InDelta(t, 1, cCoeff, epsilon)
	require.InDelta(t, 4, r.constant, epsilon) // 1 + 1*3
}

func TestRowNegate(t *testing.T) {
	a := nextSymbol(kindExternal)
	r := newRow(2, a.term(3))
	r.negate()
	require.InDelta(t, -2, r.constant, epsilon)
	coeff, _ := r.coeffOf(a)
	require.InDelta(t, -3, coeff, epsilon)
}
