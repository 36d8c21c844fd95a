package kasuari

import (
	"math"

	"go.uber.org/zap"
)

// optimize drives objective to its minimum by repeated primal pivots (spec
// §4.6): at each step it enters the non-dummy symbol with the most negative
// objective coefficient (ties broken by lowest symbol id), leaves the basic
// row that most tightly bounds it (minimum ratio test, ties again broken by
// lowest symbol id — spec §4.6's Bland-style rule, required by §9 for
// deterministic, cycle-free termination regardless of map iteration order),
// and pivots. It stops when no entering symbol remains, and fails
// ErrUnsatisfiableConstraint if a chosen entering symbol has no leaving row
// (the problem is unbounded).
func (s *Solver) optimize(objective *row) error {
	for {
		entry := invalidSymbol
		entryCoeff := 0.0
		for _, term := range objective.terms {
			if term.id.dummy() || term.coeff >= 0 {
				continue
			}
			switch {
			case !entry.valid(), term.coeff < entryCoeff:
				entry, entryCoeff = term.id, term.coeff
			case term.coeff == entryCoeff && term.id.seq() < entry.seq():
				entry = term.id
			}
		}
		if !entry.valid() {
			return nil
		}

		exit := invalidSymbol
		ratio := math.MaxFloat64

		for sym, r := range s.rows {
			if sym.external() {
				continue
			}
			coeff, ok := r.coeffOf(entry)
			if !ok || coeff >= 0 {
				continue
			}
			ratioHere := -r.constant / coeff
			switch {
			case !exit.valid(), ratioHere < ratio:
				ratio, exit = ratioHere, sym
			case ratioHere == ratio && sym.seq() < exit.seq():
				exit = sym
			}
		}

		if !exit.valid() {
			return ErrUnsatisfiableConstraint
		}

		r := s.rows[exit]
		delete(s.rows, exit)

		s.log.Debug("primal pivot",
			zap.Uint64("entering", uint64(entry)), zap.Uint64("leaving", uint64(exit)), zap.Float64("ratio", ratio))

		r.solveForSymbols(exit, entry, s.epsilon)
		s.substitute(entry, r)
		s.rows[entry] = r
	}
}

// optimizeDual restores primal feasibility after an edit or removal made
// some row's constant negative (spec §4.6). While infeasible rows remain,
// it pops one, and if it is still basic with a negative constant, pivots in
// the column that keeps the objective dual-feasible (the minimum ratio of
// objective coefficient to row coefficient, among positive row
// coefficients on non-dummy symbols that have a cell in the objective;
// symbols absent from the objective are not candidates).
func (s *Solver) optimizeDual() error {
	for len(s.infeasible) > 0 {
		exit := s.infeasible[len(s.infeasible)-1]
		s.infeasible = s.infeasible[:len(s.infeasible)-1]

		r, ok := s.rows[exit]
		if !ok || r.constant >= 0 {
			continue
		}
		delete(s.rows, exit)

		entry := invalidSymbol
		ratio := math.MaxFloat64

		for _, term := range r.terms {
			if term.coeff <= 0 || term.id.dummy() {
				continue
			}
			objCoeff, ok := s.objective.coeffOf(term.id)
			if !ok {
				continue
			}
			ratioHere := objCoeff / term.coeff
			if ratioHere < ratio {
				ratio, entry = ratioHere, term.id
			}
		}

		if !entry.valid() {
			return ErrInternalSolverError
		}

		s.log.Debug("dual pivot",
			zap.Uint64("entering", uint64(entry)), zap.Uint64("leaving", uint64(exit)), zap.Float64("ratio", ratio))

		r.solveForSymbols(exit, entry, s.epsilon)
		s.substitute(entry, r)
		s.rows[entry] = r
	}
	return nil
}
