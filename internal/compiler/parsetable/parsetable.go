// Package parsetable builds the LL(1) predictive parse table: one row per
// non-terminal, one column per terminal (column 0 is the end marker), each
// cell holding a production number, grammar.Syncro, or grammar.TableError.
package parsetable

import (
	"github.com/dekarrin/mimic/internal/compiler/firstfollow"
	"github.com/dekarrin/mimic/internal/compiler/grammar"
)

// extraSyncColumns is the fixed set of terminal columns that receive a
// synchronization marker on every non-terminal row, regardless of that
// non-terminal's own FOLLOW set. This set is not derived from the grammar;
// it is a fixed tuning applied uniformly to improve panic-mode recovery.
var extraSyncColumns = []grammar.SymbolID{3, 1, 15, 17, 47, 19, 56, 24, 27, 31, 32, 50, 8}

// Table is the predictive parse table, indexed [non-terminal][terminal].
// Row and column indices are shifted: row index is LHS - NonTerminalsStart,
// column index is 0 for the end marker and the terminal's own SymbolID
// otherwise.
type Table struct {
	rows [][]int
}

// columnOf maps a terminal SymbolID (or EndMarker) to its table column.
func columnOf(sym grammar.SymbolID) int {
	if sym == grammar.EndMarker {
		return 0
	}
	return int(sym)
}

// Build constructs the parse table from prods and the FIRST/FOLLOW sets
// computed over them.
func Build(prods []grammar.Production, sets firstfollow.Sets) *Table {
	t := &Table{rows: make([][]int, grammar.NonTerminals)}
	for i := range t.rows {
		row := make([]int, grammar.Terminals+1)
		for j := range row {
			row[j] = grammar.TableError
		}
		t.rows[i] = row
	}

	for nt := grammar.NonTerminalsStart; nt < grammar.NonTerminalsEnd; nt++ {
		row := t.rows[nt-grammar.NonTerminalsStart]
		for follow := range sets.Follow[nt] {
			row[columnOf(follow)] = grammar.Syncro
		}
		for _, col := range extraSyncColumns {
			row[columnOf(col)] = grammar.Syncro
		}
	}

	for i, p := range prods {
		prodNum := i + 1
		first, nullable := sets.FirstOfProduction(p)
		row := t.rows[p.LHS-grammar.NonTerminalsStart]
		for term := range first {
			if term == grammar.Epsilon {
				continue
			}
			row[columnOf(term)] = prodNum
		}
		if nullable {
			for follow := range sets.Follow[p.LHS] {
				row[columnOf(follow)] = prodNum
			}
		}
	}

	return t
}

// Lookup returns the table cell for (nonTerminal, terminal). terminal should
// be grammar.EndMarker for the end-of-input lookahead.
func (t *Table) Lookup(nonTerminal, terminal grammar.SymbolID) int {
	return t.rows[nonTerminal-grammar.NonTerminalsStart][columnOf(terminal)]
}

// ValidTerminals returns every terminal (grammar.EndMarker included) that
// expands nonTerminal via a production, in column order. Used to report
// what lookahead the parser actually wanted on a TableError mismatch.
func (t *Table) ValidTerminals(nonTerminal grammar.SymbolID) []grammar.SymbolID {
	row := t.rows[nonTerminal-grammar.NonTerminalsStart]
	var valid []grammar.SymbolID
	for col, cell := range row {
		if cell == grammar.TableError || cell == grammar.Syncro {
			continue
		}
		if col == 0 {
			valid = append(valid, grammar.EndMarker)
			continue
		}
		valid = append(valid, grammar.SymbolID(col))
	}
	return valid
}
