package kasuari

import "math"

// RemoveConstraint removes c from the solver (spec §4.5), reversing exactly
// the insertion recorded in its tag. Fails ErrUnknownConstraint if c was
// never added or was already removed.
func (s *Solver) RemoveConstraint(c *Constraint) error {
	t, ok := s.constraints[c]
	if !ok {
		return ErrUnknownConstraint
	}
	delete(s.constraints, c)

	if !t.marker.valid() {
		// Trivial constraint (tautology); nothing was ever inserted.
		return nil
	}

	delete(s.tags, t.marker)

	s.removeErrorContribution(t.marker, t.strength)
	s.removeErrorContribution(t.other, t.strength)

	if _, ok := s.rows[t.marker]; ok {
		delete(s.rows, t.marker)
		return s.optimize(&s.objective)
	}

	exit := s.chooseLeavingRow(t.marker)
	r := s.rows[exit]
	delete(s.rows, exit)

	r.solveForSymbols(exit, t.marker, s.epsilon)
	s.substitute(t.marker, r)

	return s.optimize(&s.objective)
}

// removeErrorContribution undoes the objective penalty an error symbol
// contributed at insertion time (spec §4.5 step 2): strength subtracted with
// sign opposite to the coefficient used when it entered the objective.
func (s *Solver) removeErrorContribution(sym symbol, strength Strength) {
	if sym.kind() != kindError {
		return
	}
	if r, ok := s.rows[sym]; ok {
		s.objective.addRow(-float64(strength), r, s.epsilon)
	} else {
		s.objective.addTerm(-float64(strength), sym, s.epsilon)
	}
}

// chooseLeavingRow scans every row for a cell keyed on marker and picks the
// one to pivot out (spec §4.5 step 3): among rows with a negative
// coefficient on marker, the one minimizing -constant/coefficient; failing
// that, among rows with a positive coefficient, the one minimizing
// constant/coefficient; failing both, an external symbol's row containing
// marker (non-external rows always fall into one of the first two groups).
func (s *Solver) chooseLeavingRow(marker symbol) symbol {
	negRatio, posRatio := math.MaxFloat64, math.MaxFloat64
	negExit, posExit, anyExit := invalidSymbol, invalidSymbol, invalidSymbol

	for sym, r := range s.rows {
		coeff, ok := r.coeffOf(marker)
		if !ok || s.nearZero(coeff) {
			continue
		}
		if sym.external() {
			anyExit = sym
			continue
		}
		switch {
		case coeff < 0:
			ratio := -r.constant / coeff
			if ratio < negRatio {
				negRatio, negExit = ratio, sym
			}
		default:
			ratio := r.constant / coeff
			if ratio < posRatio {
				posRatio, posExit = ratio, sym
			}
		}
	}

	switch {
	case negExit.valid():
		return negExit
	case posExit.valid():
		return posExit
	default:
		return anyExit
	}
}
