package kasuari

// Change is one entry of the list returned by FetchChanges: v's value moved
// to Value since the last call.
type Change struct {
	Variable *Variable
	Value    float64
}

// FetchChanges reports every external variable whose value has moved by
// more than epsilon since the last call (spec §4.8). It first ensures the
// tableau is fully re-optimized (any pending dual repair is flushed), then
// walks external variables in the order they were first referenced,
// comparing each to its last-reported value.
func (s *Solver) FetchChanges() ([]Change, error) {
	if err := s.optimizeDual(); err != nil {
		return nil, err
	}

	var changes []Change
	for _, v := range s.varOrder {
		entry := s.vars[v]
		value := s.valueOf(entry.sym)

		if !s.nearZero(value - entry.reported) {
			changes = append(changes, Change{Variable: v, Value: value})
			entry.reported = value
			s.vars[v] = entry
		}
	}
	return changes, nil
}

// Value returns v's current value without consuming it as a change —
// useful in tests and debug tooling. It does not update the change-tracking
// baseline FetchChanges compares against.
func (s *Solver) Value(v *Variable) float64 {
	entry, ok := s.vars[v]
	if !ok {
		return 0
	}
	return s.valueOf(entry.sym)
}
