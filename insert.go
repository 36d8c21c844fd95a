package kasuari

import "go.uber.org/zap"

// buildRow turns a (canonical) client Expression into an internal row over
// symbols: each variable is resolved to its External symbol (minting one on
// first sight), substituting the variable's row if it is already basic
// (spec §4.3 step 1).
func (s *Solver) buildRow(e Expression) row {
	r := newRow(e.Constant)
	for _, t := range e.Terms {
		sym := s.symbolFor(t.Variable)
		if basic, ok := s.rows[sym]; ok {
			r.addRow(t.Coefficient, basic, s.epsilon)
		} else {
			r.addTerm(t.Coefficient, sym, s.epsilon)
		}
	}
	return r
}

// AddConstraint adds c to the solver (spec §4.3). It fails with
// ErrDuplicateConstraint if c was already added, or ErrUnsatisfiableConstraint
// if c is required and conflicts with the required constraints already
// present; in the latter case the solver is left exactly as before the call
// (spec §7, §8 invariant 2, §4.3 step 7, §4.4): insert's partial tableau
// edits are rolled back via a snapshot taken before it runs.
func (s *Solver) AddConstraint(c *Constraint) error {
	if s.HasConstraint(c) {
		return ErrDuplicateConstraint
	}

	canon := c.expr.canonicalize(s.epsilon)

	if len(canon.Terms) == 0 {
		return s.addTrivialConstraint(c, canon)
	}

	snap := s.snapshot()
	t, err := s.insert(c.op, canon, c.strength)
	if err != nil {
		s.restore(snap)
		return err
	}

	s.constraints[c] = t
	return nil
}

// addTrivialConstraint handles a constraint whose canonical expression has
// no terms left (spec §4.2): it is either a contradiction (fails
// unsatisfiable), a no-op (first time a tautology like 0=0 is seen), or —
// per spec's own wording, "DuplicateConstraint if it reduces to 0 = 0 for an
// already-added constraint" — indistinguishable from any other duplicate
// once identity dedup above has already run, so in practice this path is
// always the no-op/contradiction branch.
func (s *Solver) addTrivialConstraint(c *Constraint, canon Expression) error {
	holds := false
	switch c.op {
	case OpEqual:
		holds = s.nearZero(canon.Constant)
	case OpLessThanOrEqual:
		holds = canon.Constant <= s.epsilon
	case OpGreaterThanOrEqual:
		holds = canon.Constant >= -s.epsilon
	}
	if !holds {
		return ErrUnsatisfiableConstraint
	}
	s.constraints[c] = tag{}
	return nil
}

// insert converts a canonical expression into augmented simplex form, picks
// a subject to pivot on (or falls back to the artificial-variable phase),
// and re-optimizes. Returns the tag to record for the inserted constraint.
func (s *Solver) insert(op Op, canon Expression, strength Strength) (tag, error) {
	t := tag{strength: strength}
	r := s.buildRow(canon)

	switch op {
	case OpLessThanOrEqual, OpGreaterThanOrEqual:
		coeff := 1.0
		if op == OpGreaterThanOrEqual {
			coeff = -1.0
		}
		t.marker = nextSymbol(kindSlack)
		r.addTerm(coeff, t.marker, s.epsilon)

		if !strength.IsRequired() {
			t.other = nextSymbol(kindError)
			r.addTerm(-coeff, t.other, s.epsilon)
			s.objective.addTerm(float64(strength), t.other, s.epsilon)
		}
	case OpEqual:
		if !strength.IsRequired() {
			t.marker = nextSymbol(kindError)
			t.other = nextSymbol(kindError)

			r.addTerm(-1.0, t.marker, s.epsilon)
			r.addTerm(1.0, t.other, s.epsilon)

			s.objective.addTerm(float64(strength), t.marker, s.epsilon)
			s.objective.addTerm(float64(strength), t.other, s.epsilon)
		} else {
			t.marker = nextSymbol(kindDummy)
			r.addTerm(1.0, t.marker, s.epsilon)
		}
	}

	if r.constant < 0 {
		r.negate()
	}

	subject, err := s.findSubject(r, t)
	if err != nil {
		return tag{}, err
	}

	if subject.valid() {
		r.solveFor(subject)
		s.substitute(subject, r)
		s.rows[subject] = r
	} else if err := s.addArtificialRow(r); err != nil {
		return tag{}, err
	}

	s.tags[t.marker] = t

	if err := s.optimize(&s.objective); err != nil {
		return tag{}, err
	}
	return t, nil
}

// findSubject picks the variable to solve the new row for (spec §4.3 step
// 5): an External symbol if one appears, else a restricted (slack/error)
// marker/other with negative coefficient, else invalidSymbol to signal the
// artificial-variable phase. A row over only dummy symbols with a non-zero
// constant is an immediate contradiction.
func (s *Solver) findSubject(r row, t tag) (symbol, error) {
	for _, term := range r.terms {
		if term.id.external() {
			return term.id, nil
		}
	}

	if t.marker.restricted() {
		if coeff, ok := r.coeffOf(t.marker); ok && coeff < 0 {
			return t.marker, nil
		}
	}
	if t.other.restricted() {
		if coeff, ok := r.coeffOf(t.other); ok && coeff < 0 {
			return t.other, nil
		}
	}

	for _, term := range r.terms {
		if !term.id.dummy() {
			return invalidSymbol, nil
		}
	}

	if !s.nearZero(r.constant) {
		return invalidSymbol, ErrUnsatisfiableConstraint
	}
	return t.marker, nil
}

// addArtificialRow runs the artificial-variable procedure (spec §4.4) when
// no subject could be found: it minimizes a transient artificial row until
// it is zero (the new constraint is consistent) and then evicts the
// artificial symbol from every row and the objective.
func (s *Solver) addArtificialRow(r row) error {
	art := nextSymbol(kindSlack)
	s.log.Debug("artificial variable phase", zap.Uint64("artificial", uint64(art)))

	s.rows[art] = r.clone()
	s.artificial = r.clone()

	if err := s.optimize(&s.artificial); err != nil {
		return err
	}

	success := s.nearZero(s.artificial.constant)
	s.artificial = row{}

	if artRow, ok := s.rows[art]; ok {
		delete(s.rows, art)

		entry := invalidSymbol
		for _, term := range artRow.terms {
			if term.id.restricted() {
				entry = term.id
				break
			}
		}
		if entry.valid() {
			artRow.solveForSymbols(art, entry, s.epsilon)
			s.substitute(entry, artRow)
			s.rows[entry] = artRow
		} else {
			// A row left with no terms, or with only dummy symbols, is
			// discarded; any other row with nothing to pivot on fails.
			for _, term := range artRow.terms {
				if !term.id.dummy() {
					return ErrUnsatisfiableConstraint
				}
			}
		}
	}

	for sym, rr := range s.rows {
		if idx := rr.find(art); idx != -1 {
			rr.deleteAt(idx)
			s.rows[sym] = rr
		}
	}
	if idx := s.objective.find(art); idx != -1 {
		s.objective.deleteAt(idx)
	}

	if !success {
		return ErrUnsatisfiableConstraint
	}
	return nil
}

// substitute replaces every occurrence of id across every row, the
// objective, and the artificial row with e, enqueueing any non-external row
// whose constant goes negative for dual repair (spec §4.6).
func (s *Solver) substitute(id symbol, e row) {
	for sym := range s.rows {
		r := s.rows[sym]
		r.substitute(id, e, s.epsilon)
		s.rows[sym] = r

		if sym.external() || r.constant >= 0 {
			continue
		}
		s.infeasible = append(s.infeasible, sym)
	}
	s.objective.substitute(id, e, s.epsilon)
	s.artificial.substitute(id, e, s.epsilon)
}
