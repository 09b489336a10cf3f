// Package firstfollow computes FIRST and FOLLOW sets for the fixed grammar,
// as an iterative fixed-point rather than the recursive walk the reference
// implementation uses: each pass sweeps every production until no set
// changes, which is the idiomatic restatement of the same computation.
package firstfollow

import "github.com/dekarrin/mimic/internal/compiler/grammar"

// Sets holds the computed FIRST and FOLLOW tables, keyed by symbol ID. FIRST
// is stored for every terminal, every non-terminal, and epsilon (not for the
// end marker); FOLLOW only for non-terminals.
// grammar.EndMarker stands in for the end-of-input marker ("$") wherever it
// appears in a FOLLOW set.
type Sets struct {
	First  map[grammar.SymbolID]map[grammar.SymbolID]bool
	Follow map[grammar.SymbolID]map[grammar.SymbolID]bool
}

// Compute derives FIRST and FOLLOW for every symbol in prods, starting at
// start (the grammar's start symbol).
func Compute(prods []grammar.Production, start grammar.SymbolID) Sets {
	s := Sets{
		First:  make(map[grammar.SymbolID]map[grammar.SymbolID]bool),
		Follow: make(map[grammar.SymbolID]map[grammar.SymbolID]bool),
	}

	for id := grammar.SymbolID(0); id < grammar.TermsSize; id++ {
		if id.IsTerminal() {
			s.First[id] = map[grammar.SymbolID]bool{id: true}
		}
	}
	s.First[grammar.Epsilon] = map[grammar.SymbolID]bool{grammar.Epsilon: true}
	for id := grammar.NonTerminalsStart; id < grammar.NonTerminalsEnd; id++ {
		s.First[id] = map[grammar.SymbolID]bool{}
		s.Follow[id] = map[grammar.SymbolID]bool{}
	}
	s.Follow[start] = map[grammar.SymbolID]bool{grammar.EndMarker: true}

	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			before := len(s.First[p.LHS])
			s.addFirstOfSequence(p.LHS, p.RHS)
			if len(s.First[p.LHS]) != before {
				changed = true
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for _, p := range prods {
			for i, sym := range p.RHS {
				if !sym.IsNonTerminal() {
					continue
				}
				before := len(s.Follow[sym])

				rest := p.RHS[i+1:]
				firstOfRest, restNullable := s.firstOfSequence(rest)
				for t := range firstOfRest {
					if t != grammar.Epsilon {
						s.Follow[sym][t] = true
					}
				}
				if restNullable {
					for t := range s.Follow[p.LHS] {
						s.Follow[sym][t] = true
					}
				}

				if len(s.Follow[sym]) != before {
					changed = true
				}
			}
		}
	}

	return s
}

// FirstOfProduction computes FIRST of a production's right-hand side and
// reports whether it can derive epsilon, for use when filling in a parse
// table cell.
func (s Sets) FirstOfProduction(p grammar.Production) (map[grammar.SymbolID]bool, bool) {
	return s.firstOfSequence(p.RHS)
}

// firstOfSequence computes FIRST of a symbol sequence (without mutating any
// stored set) and reports whether the whole sequence can derive epsilon.
func (s Sets) firstOfSequence(seq []grammar.SymbolID) (map[grammar.SymbolID]bool, bool) {
	result := map[grammar.SymbolID]bool{}
	nullable := true
	for _, sym := range seq {
		if sym == grammar.Epsilon {
			continue
		}
		symNullable := false
		for t := range s.First[sym] {
			if t == grammar.Epsilon {
				symNullable = true
				continue
			}
			result[t] = true
		}
		if !symNullable {
			nullable = false
			break
		}
	}
	if nullable {
		result[grammar.Epsilon] = true
	}
	return result, nullable
}

// addFirstOfSequence folds FIRST(rhs) into FIRST(lhs) in place.
func (s Sets) addFirstOfSequence(lhs grammar.SymbolID, rhs []grammar.SymbolID) {
	first, _ := s.firstOfSequence(rhs)
	for t := range first {
		s.First[lhs][t] = true
	}
}
