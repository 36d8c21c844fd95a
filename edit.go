package kasuari

// AddEditVariable marks v as interactively adjustable via SuggestValue, at
// the given strength (spec §4.7). strength must be below Required — an edit
// variable must stay soft so required constraints can always override a
// suggestion — else ErrBadRequiredStrength. Adding the same variable twice
// fails ErrDuplicateEditVariable.
func (s *Solver) AddEditVariable(v *Variable, strength Strength) error {
	if strength.IsRequired() {
		return ErrBadRequiredStrength
	}
	if s.HasEditVariable(v) {
		return ErrDuplicateEditVariable
	}

	current := s.valueOf(s.symbolFor(v))
	c := v.EqualTo(Const(current)).Strength(strength)

	if err := s.AddConstraint(c); err != nil {
		return err
	}

	s.edits[v] = editEntry{
		constraint: c,
		tag:        s.constraints[c],
		suggested:  current,
	}
	return nil
}

// RemoveEditVariable removes v's edit constraint, after which SuggestValue
// no longer accepts it. Fails ErrUnknownEditVariable if v is not currently
// an edit variable.
func (s *Solver) RemoveEditVariable(v *Variable) error {
	entry, ok := s.edits[v]
	if !ok {
		return ErrUnknownEditVariable
	}
	if err := s.RemoveConstraint(entry.constraint); err != nil {
		return err
	}
	delete(s.edits, v)
	return nil
}

// SuggestValue nudges edit variable v toward x (spec §4.7): it computes the
// delta from the previous suggestion and propagates it across the rows that
// reference the edit's marker/other symbols, then restores feasibility with
// the dual simplex. Fails ErrUnknownEditVariable if v is not an edit
// variable.
func (s *Solver) SuggestValue(v *Variable, x float64) error {
	entry, ok := s.edits[v]
	if !ok {
		return ErrUnknownEditVariable
	}

	delta := x - entry.suggested
	entry.suggested = x
	s.edits[v] = entry

	if r, ok := s.rows[entry.tag.marker]; ok {
		r.constant -= delta
		if r.constant < 0 {
			s.infeasible = append(s.infeasible, entry.tag.marker)
		}
		s.rows[entry.tag.marker] = r
		return s.optimizeDual()
	}

	if r, ok := s.rows[entry.tag.other]; ok {
		r.constant += delta
		if r.constant < 0 {
			s.infeasible = append(s.infeasible, entry.tag.other)
		}
		s.rows[entry.tag.other] = r
		return s.optimizeDual()
	}

	for sym, r := range s.rows {
		coeff, ok := r.coeffOf(entry.tag.marker)
		if !ok || s.nearZero(coeff) {
			continue
		}
		r.constant += coeff * delta
		s.rows[sym] = r

		if r.constant >= 0 || sym.external() {
			continue
		}
		s.infeasible = append(s.infeasible, sym)
	}

	return s.optimizeDual()
}
