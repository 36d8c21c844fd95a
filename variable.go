package kasuari

import "fmt"

// Variable is a client-owned real-valued identity. Two variables compare
// equal only if they are the same *Variable: two distinct variables created
// with the same name are distinct (spec §3). Its value is never stored on
// the Variable itself; it is only observable through Solver.FetchChanges
// and Solver.Value.
type Variable struct {
	name string
}

// NewVariable creates a fresh variable. name is an optional debug label
// (shown in String/logs); it plays no role in equality or hashing.
func NewVariable(name ...string) *Variable {
	v := &Variable{}
	if len(name) > 0 {
		v.name = name[0]
	}
	return v
}

// Name returns the variable's debug label, or a synthesized one if none was
// given at construction.
func (v *Variable) Name() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("var@%p", v)
}

func (v *Variable) String() string { return v.Name() }

// Term pairs v with a coefficient, for use in the low-level Constraint
// builder (NewConstraintFromTerms).
func (v *Variable) Term(coeff float64) Term { return Term{Variable: v, Coefficient: coeff} }

// Expr lifts v to an Expression with coefficient 1 and no constant.
func (v *Variable) Expr() Expression { return Expression{Terms: []Term{v.Term(1)}} }

// Plus returns v + c as an Expression.
func (v *Variable) Plus(c float64) Expression { return v.Expr().Plus(c) }

// Minus returns v - c as an Expression.
func (v *Variable) Minus(c float64) Expression { return v.Expr().Minus(c) }

// PlusVariable returns v + other as an Expression.
func (v *Variable) PlusVariable(other *Variable) Expression { return v.Expr().PlusVariable(other) }

// MinusVariable returns v - other as an Expression.
func (v *Variable) MinusVariable(other *Variable) Expression { return v.Expr().MinusVariable(other) }

// PlusExpression returns v + e.
func (v *Variable) PlusExpression(e Expression) Expression { return v.Expr().PlusExpression(e) }

// MinusExpression returns v - e.
func (v *Variable) MinusExpression(e Expression) Expression { return v.Expr().MinusExpression(e) }

// Times returns v scaled by c.
func (v *Variable) Times(c float64) Expression { return v.Expr().Times(c) }

// DividedBy returns v scaled by 1/c.
func (v *Variable) DividedBy(c float64) Expression { return v.Expr().DividedBy(c) }

// Negate returns -v.
func (v *Variable) Negate() Expression { return v.Expr().Negate() }

// EqualTo builds `v = rhs` at Required strength; chain .Strength(s) to relax it.
func (v *Variable) EqualTo(rhs Expression) *Constraint { return EqualTo(v.Expr(), rhs) }

// LessThanOrEqualTo builds `v <= rhs` at Required strength.
func (v *Variable) LessThanOrEqualTo(rhs Expression) *Constraint {
	return LessThanOrEqualTo(v.Expr(), rhs)
}

// GreaterThanOrEqualTo builds `v >= rhs` at Required strength.
func (v *Variable) GreaterThanOrEqualTo(rhs Expression) *Constraint {
	return GreaterThanOrEqualTo(v.Expr(), rhs)
}
