package kasuari

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tag records how a constraint was inserted into the tableau, so its
// insertion can be reversed exactly on removal (spec §3): marker is the
// primary auxiliary symbol introduced for the constraint (slack, error, or
// dummy); other is the second error symbol of a soft equality, else
// invalidSymbol.
type tag struct {
	marker   symbol
	other    symbol
	strength Strength
}

// varEntry is what the tableau remembers about a client Variable: its
// internal symbol and the value last reported to the client via
// FetchChanges.
type varEntry struct {
	sym      symbol
	reported float64
}

// editEntry is the bookkeeping for a live edit variable (spec §4.7).
type editEntry struct {
	constraint *Constraint
	tag        tag
	suggested  float64
}

// Solver is a single in-process Cassowary tableau. It is not safe for
// concurrent use by multiple goroutines; the caller must serialize access
// (spec §5). Distinct *Solver instances are fully isolated.
type Solver struct {
	id      uuid.UUID
	log     *zap.Logger
	epsilon float64

	rows        map[symbol]row
	tags        map[symbol]tag
	constraints map[*Constraint]tag

	vars     map[*Variable]varEntry
	varOrder []*Variable

	edits map[*Variable]editEntry

	infeasible []symbol

	objective  row
	artificial row
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a structured logger used to trace pivot selection at
// debug level. The default is a no-op logger: tracing costs nothing unless
// a caller opts in.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEpsilon overrides the zero-comparison tolerance (default 1e-8, spec
// §9) used for coefficient elimination, ratio tests, and feasibility checks.
func WithEpsilon(eps float64) Option {
	return func(s *Solver) {
		if eps > 0 {
			s.epsilon = eps
		}
	}
}

// NewSolver creates an empty solver.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		id:          uuid.New(),
		log:         zap.NewNop(),
		epsilon:     epsilon,
		rows:        make(map[symbol]row),
		tags:        make(map[symbol]tag),
		constraints: make(map[*Constraint]tag),
		vars:        make(map[*Variable]varEntry),
		edits:       make(map[*Variable]editEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the solver's correlation identity, useful only for telling
// apart log lines from multiple concurrently-running solver instances.
func (s *Solver) ID() uuid.UUID { return s.id }

func (s *Solver) nearZero(v float64) bool {
	if v < 0 {
		return -v < s.epsilon
	}
	return v < s.epsilon
}

// symbolFor returns v's internal External symbol, minting one on first
// sight (spec §4.3 step 1).
func (s *Solver) symbolFor(v *Variable) symbol {
	entry, ok := s.vars[v]
	if ok {
		return entry.sym
	}
	sym := nextSymbol(kindExternal)
	s.vars[v] = varEntry{sym: sym}
	s.varOrder = append(s.varOrder, v)
	return sym
}

// valueOf returns the current value of a symbol: the constant of its row if
// it is basic, else zero (spec §4.8).
func (s *Solver) valueOf(sym symbol) float64 {
	r, ok := s.rows[sym]
	if !ok {
		return 0
	}
	return r.constant
}

// Reset discards all constraints, edit variables, and variable bookkeeping,
// returning the solver to its initial empty state. Existing *Variable and
// *Constraint handles remain valid for reuse in a fresh sequence of calls.
func (s *Solver) Reset() {
	s.rows = make(map[symbol]row)
	s.tags = make(map[symbol]tag)
	s.constraints = make(map[*Constraint]tag)
	s.vars = make(map[*Variable]varEntry)
	s.varOrder = nil
	s.edits = make(map[*Variable]editEntry)
	s.infeasible = nil
	s.objective = row{}
	s.artificial = row{}
}

// HasConstraint reports whether c is currently part of the solver.
func (s *Solver) HasConstraint(c *Constraint) bool {
	_, ok := s.constraints[c]
	return ok
}

// tableauSnapshot is the mutable tableau state insert (spec §4.3 step 7,
// §4.4 "revert") needs to restore on failure: everything AddConstraint's
// insert path can touch before it knows whether the constraint is
// satisfiable. constraints and edits are deliberately excluded — insert
// never touches them itself; AddConstraint only records c's tag there after
// insert has already succeeded.
type tableauSnapshot struct {
	rows       map[symbol]row
	tags       map[symbol]tag
	vars       map[*Variable]varEntry
	varOrder   []*Variable
	infeasible []symbol
	objective  row
}

// snapshot captures the tableau state for a possible rollback.
func (s *Solver) snapshot() tableauSnapshot {
	rows := make(map[symbol]row, len(s.rows))
	for sym, r := range s.rows {
		rows[sym] = r.clone()
	}
	tags := make(map[symbol]tag, len(s.tags))
	for sym, t := range s.tags {
		tags[sym] = t
	}
	vars := make(map[*Variable]varEntry, len(s.vars))
	for v, e := range s.vars {
		vars[v] = e
	}
	return tableauSnapshot{
		rows:       rows,
		tags:       tags,
		vars:       vars,
		varOrder:   append([]*Variable(nil), s.varOrder...),
		infeasible: append([]symbol(nil), s.infeasible...),
		objective:  s.objective.clone(),
	}
}

// restore reverts the tableau to a prior snapshot, discarding any partial
// insertion (spec §4.3 step 7, §4.4: "erase all traces of a, revert, fail").
// The transient artificial row never survives past the call that built it,
// so it is simply cleared rather than snapshotted.
func (s *Solver) restore(snap tableauSnapshot) {
	s.rows = snap.rows
	s.tags = snap.tags
	s.vars = snap.vars
	s.varOrder = snap.varOrder
	s.infeasible = snap.infeasible
	s.objective = snap.objective
	s.artificial = row{}
}

// HasEditVariable reports whether v is currently an edit variable.
func (s *Solver) HasEditVariable(v *Variable) bool {
	_, ok := s.edits[v]
	return ok
}
