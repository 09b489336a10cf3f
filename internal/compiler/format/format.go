// Package format renders the compiler pipeline's diagnostic artifacts:
// the token stream, FIRST and FOLLOW sets, and the parse table.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/rosed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dekarrin/mimic/internal/compiler/firstfollow"
	"github.com/dekarrin/mimic/internal/compiler/grammar"
	"github.com/dekarrin/mimic/internal/compiler/parsetable"
	"github.com/dekarrin/mimic/internal/compiler/token"
)

// numberPrinter formats the parse table's production indices with
// locale-aware digit grouping instead of bare fmt.Sprintf.
var numberPrinter = message.NewPrinter(language.English)

// Tokens writes one line per token in toks, in the lexer's own fixed-width
// format (see token.Token.String), skipping none of the categories: callers
// that want only well-formed tokens should filter before calling.
func Tokens(w io.Writer, toks []token.Token) {
	for _, t := range toks {
		fmt.Fprintln(w, t.String())
	}
}

// FirstSets writes one "symbol ===> members" line per non-terminal, in
// ascending symbol order.
func FirstSets(w io.Writer, sets firstfollow.Sets) {
	for nt := grammar.NonTerminalsStart; nt < grammar.NonTerminalsEnd; nt++ {
		fmt.Fprintf(w, "%s ===> %s\n", nt.Name(), joinSymbols(sets.First[nt]))
	}
}

// FollowSets writes one "symbol ===> members" line per non-terminal. The
// end marker, where present, is printed as "$".
func FollowSets(w io.Writer, sets firstfollow.Sets) {
	for nt := grammar.NonTerminalsStart; nt < grammar.NonTerminalsEnd; nt++ {
		fmt.Fprintf(w, "%s ===> %s\n", nt.Name(), joinSymbols(sets.Follow[nt]))
	}
}

func joinSymbols(set map[grammar.SymbolID]bool) string {
	parts := make([]string, 0, len(set))
	for sym := range set {
		if sym == grammar.EndMarker {
			parts = append(parts, "$")
			continue
		}
		parts = append(parts, sym.Name())
	}
	return strings.Join(parts, ", ")
}

// ParseTable renders the predictive parse table as a bordered grid, one row
// per non-terminal and one column per terminal (plus the end marker),
// cells showing the production number, SYNC, or blank for an error cell.
func ParseTable(w io.Writer, table *parsetable.Table) {
	data := [][]string{}

	header := []string{""}
	header = append(header, "$")
	for term := grammar.SymbolID(1); term <= grammar.Terminals; term++ {
		header = append(header, term.Name())
	}
	data = append(data, header)

	for nt := grammar.NonTerminalsStart; nt < grammar.NonTerminalsEnd; nt++ {
		row := []string{nt.Name()}
		for term := grammar.SymbolID(0); term <= grammar.Terminals; term++ {
			sym := term
			if term == 0 {
				sym = grammar.EndMarker
			}
			row = append(row, cellString(table.Lookup(nt, sym)))
		}
		data = append(data, row)
	}

	out := rosed.Edit("").
		InsertTableOpts(0, data, 200, rosed.Options{TableBorders: true}).
		String()
	fmt.Fprintln(w, out)
}

func cellString(cell int) string {
	switch cell {
	case grammar.TableError:
		return ""
	case grammar.Syncro:
		return "SYNC"
	default:
		return numberPrinter.Sprintf("%d", cell)
	}
}
