package kasuari

// Op is a constraint's relation to zero: spec §3 defines a constraint as
// `expression relation 0`.
type Op uint8

const (
	OpEqual Op = iota
	OpGreaterThanOrEqual
	OpLessThanOrEqual
)

var opNames = [...]string{
	OpEqual:              "=",
	OpGreaterThanOrEqual: ">=",
	OpLessThanOrEqual:    "<=",
}

func (o Op) String() string { return opNames[o] }

// Constraint is `expression relation 0` at a given strength (spec §3). Build
// one with EqualTo/LessThanOrEqualTo/GreaterThanOrEqualTo (or a Variable's or
// Expression's matching method), then optionally narrow its strength with
// Strength; constraints default to Required.
type Constraint struct {
	expr     Expression
	op       Op
	strength Strength
}

// NewConstraintFromTerms builds a constraint directly from raw terms and a
// constant, in the shape of the teacher's NewConstraint(op, constant,
// terms...): `Σ terms + constant relation 0`. This is the low-level escape
// hatch the Expression DSL itself compiles down to.
func NewConstraintFromTerms(op Op, constant float64, terms ...Term) *Constraint {
	return &Constraint{
		expr:     Expression{Terms: terms, Constant: constant},
		op:       op,
		strength: Required,
	}
}

func newRelation(op Op, lhs, rhs Expression) *Constraint {
	return &Constraint{
		expr:     lhs.MinusExpression(rhs),
		op:       op,
		strength: Required,
	}
}

// EqualTo builds `lhs = rhs` at Required strength.
func EqualTo(lhs, rhs Expression) *Constraint { return newRelation(OpEqual, lhs, rhs) }

// LessThanOrEqualTo builds `lhs <= rhs` at Required strength.
func LessThanOrEqualTo(lhs, rhs Expression) *Constraint {
	return newRelation(OpLessThanOrEqual, lhs, rhs)
}

// GreaterThanOrEqualTo builds `lhs >= rhs` at Required strength.
func GreaterThanOrEqualTo(lhs, rhs Expression) *Constraint {
	return newRelation(OpGreaterThanOrEqual, lhs, rhs)
}

// Strength returns a copy of c annotated with the given strength. This is
// the DSL's strength annotation (spec §6: "`| strength` annotation sets
// strength (default REQUIRED)"); Go has no operator overloading, so it is
// spelled as a chained call instead: `EqualTo(a, b).Strength(kasuari.Strong)`.
func (c *Constraint) Strength(s Strength) *Constraint {
	next := *c
	next.strength = s
	return &next
}
