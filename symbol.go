package kasuari

import "sync/atomic"

// symbolKind tags an internal symbol with the role it plays in the tableau.
// Pivot rules discriminate on this: the optimizers never choose a dummy
// symbol to enter the basis, and never choose an external symbol's row to
// leave it.
type symbolKind uint8

const (
	kindExternal symbolKind = iota
	kindSlack
	kindError
	kindDummy
)

var symbolKindNames = [...]string{
	kindExternal: "external",
	kindSlack:    "slack",
	kindError:    "error",
	kindDummy:    "dummy",
}

func (k symbolKind) String() string { return symbolKindNames[k] }

func (k symbolKind) restricted() bool { return k == kindSlack || k == kindError }

// symbol is an opaque, compact identifier for a row/column in the tableau.
// Its kind is packed into the top two bits of the id so that membership
// tests (external/dummy/restricted) are O(1) without a side table.
type symbol uint64

var symbolCounter uint64

// invalidSymbol is the zero value: "no symbol". It is never returned by
// nextSymbol and never appears as a key in any row or the tableau.
const invalidSymbol symbol = 0

func nextSymbol(kind symbolKind) symbol {
	id := atomic.AddUint64(&symbolCounter, 1) & 0x3fffffffffffffff
	return symbol(id | uint64(kind)<<62)
}

func (s symbol) kind() symbolKind { return symbolKind(s >> 62) }

// seq returns s's creation order, stripped of its packed kind bits. Simplex
// tie-breaking (spec §4.6, §9: "deterministic tie-breaker (symbol id)")
// compares symbols by seq, not by the raw uint64, so that two symbols of
// different kinds still order by which was minted first rather than by
// which kind happens to occupy the higher bit pattern.
func (s symbol) seq() uint64 { return uint64(s) & 0x3fffffffffffffff }

func (s symbol) valid() bool { return s != invalidSymbol }

func (s symbol) restricted() bool { return s.valid() && s.kind().restricted() }
func (s symbol) external() bool   { return s.valid() && s.kind() == kindExternal }
func (s symbol) dummy() bool      { return s.valid() && s.kind() == kindDummy }

// term creates a row term referencing s with the given coefficient.
func (s symbol) term(coeff float64) term { return term{coeff: coeff, id: s} }

func (s symbol) String() string {
	if !s.valid() {
		return "invalid"
	}
	return s.kind().String()
}
