package kasuari

import "slices"

// Term is one addend of an Expression: a coefficient on a client Variable.
type Term struct {
	Variable    *Variable
	Coefficient float64
}

// Expression is a linear combination of variables plus a constant:
// Σ Coefficient·Variable + Constant (spec §3). It is the public, client-facing
// counterpart to the solver's internal row: rows are keyed on internal
// symbols, Expressions are keyed on client Variables.
type Expression struct {
	Terms    []Term
	Constant float64
}

// NewExpression builds an expression directly from a constant and terms.
func NewExpression(constant float64, terms ...Term) Expression {
	return Expression{Terms: terms, Constant: constant}
}

// Const lifts a bare constant to an Expression.
func Const(c float64) Expression { return Expression{Constant: c} }

// canonicalize merges duplicate variable terms, drops terms whose combined
// coefficient has magnitude below eps, and leaves the constant untouched
// (spec §4.2). The input is not mutated.
func (e Expression) canonicalize(eps float64) Expression {
	merged := make([]Term, 0, len(e.Terms))
	index := make(map[*Variable]int, len(e.Terms))

	for _, t := range e.Terms {
		if i, ok := index[t.Variable]; ok {
			merged[i].Coefficient += t.Coefficient
			continue
		}
		index[t.Variable] = len(merged)
		merged = append(merged, t)
	}

	out := merged[:0]
	for _, t := range merged {
		if nearZero(t.Coefficient, eps) {
			continue
		}
		out = append(out, t)
	}

	return Expression{Terms: out, Constant: e.Constant}
}

// Plus returns e + c.
func (e Expression) Plus(c float64) Expression {
	e.Constant += c
	return e
}

// Minus returns e - c.
func (e Expression) Minus(c float64) Expression {
	e.Constant -= c
	return e
}

// PlusVariable returns e + v.
func (e Expression) PlusVariable(v *Variable) Expression {
	e.Terms = append(slices.Clone(e.Terms), v.Term(1))
	return e
}

// MinusVariable returns e - v.
func (e Expression) MinusVariable(v *Variable) Expression {
	e.Terms = append(slices.Clone(e.Terms), v.Term(-1))
	return e
}

// PlusExpression returns e + other.
func (e Expression) PlusExpression(other Expression) Expression {
	e.Terms = append(slices.Clone(e.Terms), other.Terms...)
	e.Constant += other.Constant
	return e
}

// MinusExpression returns e - other.
func (e Expression) MinusExpression(other Expression) Expression {
	return e.PlusExpression(other.Negate())
}

// Times scales e by c.
func (e Expression) Times(c float64) Expression {
	e.Terms = slices.Clone(e.Terms)
	e.Constant *= c
	for i := range e.Terms {
		e.Terms[i].Coefficient *= c
	}
	return e
}

// DividedBy scales e by 1/c.
func (e Expression) DividedBy(c float64) Expression {
	return e.Times(1 / c)
}

// Negate returns -e.
func (e Expression) Negate() Expression {
	return e.Times(-1)
}

// EqualTo builds `e = rhs` at Required strength.
func (e Expression) EqualTo(rhs Expression) *Constraint { return EqualTo(e, rhs) }

// LessThanOrEqualTo builds `e <= rhs` at Required strength.
func (e Expression) LessThanOrEqualTo(rhs Expression) *Constraint {
	return LessThanOrEqualTo(e, rhs)
}

// GreaterThanOrEqualTo builds `e >= rhs` at Required strength.
func (e Expression) GreaterThanOrEqualTo(rhs Expression) *Constraint {
	return GreaterThanOrEqualTo(e, rhs)
}
