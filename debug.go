package kasuari

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// String summarizes the solver's size, for logs and error messages.
func (s *Solver) String() string {
	return fmt.Sprintf("Solver{id=%s rows=%d constraints=%d vars=%d edits=%d}",
		s.id, len(s.rows), len(s.constraints), len(s.vars), len(s.edits))
}

// DebugDump renders the live tableau (rows and the objective) with
// go-spew, for troubleshooting a stuck or unexpectedly infeasible solve.
// Not part of the documented contract in spec §6 — a convenience only.
func (s *Solver) DebugDump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s)
	fmt.Fprintf(&b, "objective: %s\n", spew.Sdump(s.objective))
	for sym, r := range s.rows {
		fmt.Fprintf(&b, "row[%s]: %s\n", sym, spew.Sdump(r))
	}
	return b.String()
}
