// Package parser implements the LL(1) predictive parser: a stack-driven
// walk over the parse table that builds a parsetree.Node as it goes and
// recovers from errors via panic-mode synchronization rather than aborting
// on the first mistake.
package parser

import (
	"github.com/dekarrin/mimic/internal/cerrors"
	"github.com/dekarrin/mimic/internal/compiler/grammar"
	"github.com/dekarrin/mimic/internal/compiler/parsetable"
	"github.com/dekarrin/mimic/internal/compiler/parsetree"
	"github.com/dekarrin/mimic/internal/compiler/token"
	"github.com/dekarrin/mimic/internal/util"
)

// Lexer is the minimal surface the parser needs from a token source.
type Lexer interface {
	Next() token.Token
}

// Result is the outcome of parsing a token stream to completion.
type Result struct {
	Tree        *parsetree.Node
	Diagnostics []cerrors.Diagnostic
	Clean       bool // true if no diagnostics were recorded
}

// Parse drives the predictive parser over every token lx produces, against
// table, starting from the grammar's start symbol. It always returns a
// tree; Result.Clean reports whether the input was free of lexical or
// syntactic errors.
func Parse(lx Lexer, table *parsetable.Table) Result {
	root := parsetree.NewRoot(grammar.NProgram)

	var stack util.Stack[*parsetree.Node]
	stack.Push(root)

	var diags []cerrors.Diagnostic
	clean := true

	tok := lx.Next()
	erFl := false
	for tok.Category != token.EOF {
		if tok.Category != token.Normal {
			clean = false
			diags = append(diags, lexicalDiagnostic(tok))
			tok = lx.Next()
			erFl = false
			continue
		}

		if tok.Kind == token.TkComment {
			tok = lx.Next()
			erFl = false
			continue
		}

		advance := stepOnce(&stack, tok, table, &diags, &clean, &erFl)
		if advance {
			tok = lx.Next()
			erFl = false
		}
		// else: same token is re-examined against the new stack top, the
		// panic-mode recovery loop's whole point.
		if stack.Empty() {
			break
		}
	}

	if tok.Category == token.EOF && !stack.Empty() {
		clean = false
		diags = append(diags, cerrors.Diagnostic{
			Line: tok.Line, Kind: "syntactic",
			Message: "unexpected end of input while parsing " + stack.Peek().Symbol.Name(),
		})
	}

	return Result{Tree: root, Diagnostics: diags, Clean: clean}
}

// stepOnce examines the current stack top against tok and returns whether
// the caller should advance to the next token. It mutates stack, diags, and
// clean in place, mirroring the reference parseToken's single-token-at-a-
// time contract. erFl mirrors the reference's er_fl: once an error has been
// reported for the current input token, further mismatch/SYNC diagnostics
// for that same token (encountered as the stack unwinds through repeated
// re-examine calls) are suppressed, so one bad token yields one diagnostic.
func stepOnce(stack *util.Stack[*parsetree.Node], tok token.Token, table *parsetable.Table, diags *[]cerrors.Diagnostic, clean *bool, erFl *bool) bool {
	top := stack.Peek()
	lookahead := lookaheadSymbol(tok)

	if top.IsTerminal || top.IsEpsilon {
		if top.Symbol == lookahead {
			top.SetMatch(tok)
			stack.Pop()
			return true
		}
		*clean = false
		if !*erFl {
			*diags = append(*diags, cerrors.Diagnostic{
				Line: tok.Line, Kind: "syntactic",
				Message: "expected " + top.Symbol.Name() + " but found " + lookahead.Name(),
			})
			*erFl = true
		}
		stack.Pop()
		return false
	}

	cell := table.Lookup(top.Symbol, lookahead)
	switch {
	case cell == grammar.TableError:
		*clean = false
		if !*erFl {
			*diags = append(*diags, cerrors.Diagnostic{
				Line: tok.Line, Kind: "syntactic",
				Message: "unexpected " + lookahead.Name() + " while parsing " + top.Symbol.Name() +
					"; expected " + util.MakeTextList(symbolNames(table.ValidTerminals(top.Symbol))),
			})
			*erFl = true
		}
		return true // consume the token, leave the non-terminal on the stack
	case cell == grammar.Syncro:
		*clean = false
		if !*erFl {
			*diags = append(*diags, cerrors.Diagnostic{
				Line: tok.Line, Kind: "syntactic",
				Message: "skipping " + top.Symbol.Name() + " to resynchronize before " + lookahead.Name(),
			})
			*erFl = true
		}
		stack.Pop()
		return false
	default:
		prod := grammar.Productions[cell-1]
		children := top.Expand(prod)
		stack.Pop()
		for i := len(children) - 1; i >= 0; i-- {
			if !children[i].IsEpsilon {
				stack.Push(children[i])
			}
		}
		return false // re-examine the same token against the new top
	}
}

// lookaheadSymbol maps a scanned token to the grammar symbol the parse
// table is indexed by.
func lookaheadSymbol(tok token.Token) grammar.SymbolID {
	if sym, ok := grammar.SymbolOf(tok.Kind); ok {
		return sym
	}
	return grammar.EndMarker
}

// symbolNames renders a row of valid lookahead terminals as display names,
// for the "expected one of ..." half of a TableError diagnostic.
func symbolNames(syms []grammar.SymbolID) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name()
	}
	return names
}

func lexicalDiagnostic(tok token.Token) cerrors.Diagnostic {
	msg := "unknown pattern <" + tok.Lexeme + ">"
	if tok.Category == token.LengthExceeded {
		if tok.Kind == token.TkFunid {
			msg = "function identifier longer than the prescribed length"
		} else {
			msg = "variable identifier longer than the prescribed length"
		}
	}
	return cerrors.Diagnostic{Line: tok.Line, Kind: "lexical", Message: msg}
}
