package kasuari

import "errors"

// Error kinds are disjoint and finite (spec §7). Callers must branch on them
// with errors.Is, never by comparing strings. The solver returns these
// sentinels unwrapped.
var (
	// ErrDuplicateConstraint is returned by AddConstraint when the same
	// *Constraint (compared by pointer identity) is already present. Solver
	// state is unchanged.
	ErrDuplicateConstraint = errors.New("kasuari: constraint already added")

	// ErrUnknownConstraint is returned by RemoveConstraint for a constraint
	// that was never added, or already removed.
	ErrUnknownConstraint = errors.New("kasuari: constraint not found")

	// ErrUnsatisfiableConstraint is returned when adding a required
	// constraint would conflict with the required constraints already
	// present (including an unbounded optimization). The solver rolls back
	// any partial insertion, so state is exactly as before the call.
	ErrUnsatisfiableConstraint = errors.New("kasuari: constraint is unsatisfiable")

	// ErrDuplicateEditVariable is returned by AddEditVariable when the
	// variable is already an edit variable.
	ErrDuplicateEditVariable = errors.New("kasuari: variable is already an edit variable")

	// ErrUnknownEditVariable is returned by RemoveEditVariable or
	// SuggestValue for a variable that is not currently an edit variable.
	ErrUnknownEditVariable = errors.New("kasuari: variable is not an edit variable")

	// ErrBadRequiredStrength is returned by AddEditVariable when given
	// Required: edit variables must be soft so suggestions can be overruled
	// by hard constraints.
	ErrBadRequiredStrength = errors.New("kasuari: edit variable strength must not be required")

	// ErrInternalSolverError denotes a violated invariant: a bug, or a
	// numerical catastrophe severe enough that the tableau can no longer be
	// trusted. It is returned as this bare sentinel, with no added detail.
	ErrInternalSolverError = errors.New("kasuari: internal solver error")
)
