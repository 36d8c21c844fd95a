package kasuari

// epsilon is the default zero-comparison tolerance used throughout the
// solver: coefficient elimination, ratio tests, and "row is feasible"
// checks. A *Solver may override it via WithEpsilon, in which case s.epsilon
// is threaded down into every row method below that eliminates a cell.
const epsilon = 1e-8

func nearZero(v, eps float64) bool {
	if v < 0 {
		return -v < eps
	}
	return v < eps
}

// term is one sparse cell of a row: a coefficient on an internal symbol.
type term struct {
	coeff float64
	id    symbol
}

// row is a sparse symbol -> coefficient mapping plus a constant term. It is
// stored as a slice of non-zero terms rather than a map because rows in
// practice carry only a handful of live symbols and linear scan beats a map
// both in allocation count and in cache behavior at that size; the teacher
// (lithdew/cassowary) and its charmbracelet/ultraviolet fork both store rows
// this way. Invariants (spec §3): no term's coefficient has magnitude below
// the solver's epsilon, and the row's own basic symbol never appears as a
// term within it.
type row struct {
	constant float64
	terms    []term
}

func newRow(constant float64, terms ...term) row {
	return row{constant: constant, terms: terms}
}

func (r row) clone() row {
	terms := make([]term, len(r.terms))
	copy(terms, r.terms)
	return row{constant: r.constant, terms: terms}
}

func (r row) find(id symbol) int {
	for i := range r.terms {
		if r.terms[i].id == id {
			return i
		}
	}
	return -1
}

func (r row) coeffOf(id symbol) (float64, bool) {
	idx := r.find(id)
	if idx == -1 {
		return 0, false
	}
	return r.terms[idx].coeff, true
}

func (r *row) deleteAt(idx int) {
	copy(r.terms[idx:], r.terms[idx+1:])
	r.terms = r.terms[:len(r.terms)-1]
}

func (r *row) deleteSymbol(id symbol) {
	if idx := r.find(id); idx != -1 {
		r.deleteAt(idx)
	}
}

// addTerm accumulates coeff onto id's existing cell, dropping the cell if
// the magnitude of the result falls below eps (spec §3 invariant (b)).
func (r *row) addTerm(coeff float64, id symbol, eps float64) {
	idx := r.find(id)
	if idx == -1 {
		if !nearZero(coeff, eps) {
			r.terms = append(r.terms, term{coeff: coeff, id: id})
		}
		return
	}
	r.terms[idx].coeff += coeff
	if nearZero(r.terms[idx].coeff, eps) {
		r.deleteAt(idx)
	}
}

// addRow adds coeff·other into r, including its constant.
func (r *row) addRow(coeff float64, other row, eps float64) {
	r.constant += coeff * other.constant
	for _, t := range other.terms {
		r.addTerm(coeff*t.coeff, t.id, eps)
	}
}

func (r *row) negate() {
	r.constant = -r.constant
	for i := range r.terms {
		r.terms[i].coeff = -r.terms[i].coeff
	}
}

// solveFor rewrites r (currently an equation "... + id + ... = 0") so that
// id becomes the implicit left-hand side: its cell is removed and every
// remaining coefficient (and the constant) is divided by -coefficient(id).
func (r *row) solveFor(id symbol) {
	idx := r.find(id)
	if idx == -1 {
		return
	}

	scale := -1.0 / r.terms[idx].coeff
	r.deleteAt(idx)

	if scale == 1.0 {
		return
	}
	r.constant *= scale
	for i := range r.terms {
		r.terms[i].coeff *= scale
	}
}

// solveForSymbols rewrites r, which currently defines lhs, to instead define
// rhs: it moves lhs to the right-hand side (coefficient -1) and solves for
// rhs. Used when pivoting rhs into the basis in place of lhs.
func (r *row) solveForSymbols(lhs, rhs symbol, eps float64) {
	r.addTerm(-1.0, lhs, eps)
	r.solveFor(rhs)
}

// substitute replaces every occurrence of id in r with other, scaled by the
// coefficient id had in r. A no-op if id does not appear.
func (r *row) substitute(id symbol, other row, eps float64) {
	idx := r.find(id)
	if idx == -1 {
		return
	}
	coeff := r.terms[idx].coeff
	r.deleteAt(idx)
	r.addRow(coeff, other, eps)
}
