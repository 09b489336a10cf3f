package lex

import "github.com/dekarrin/mimic/internal/compiler/token"

// keywordEntry pairs a reserved word with the token kind it produces.
type keywordEntry struct {
	lexeme string
	kind   token.Kind
}

// keywordTable is the closed set of reserved words. Order does not matter;
// lookup is by exact string match.
var keywordTable = []keywordEntry{
	{"else", token.TkElse},
	{"with", token.TkWith},
	{"parameters", token.TkParameters},
	{"output", token.TkOutput},
	{"int", token.TkInt},
	{"read", token.TkRead},
	{"write", token.TkWrite},
	{"return", token.TkReturn},
	{"then", token.TkThen},
	{"real", token.TkReal},
	{"endwhile", token.TkEndwhile},
	{"if", token.TkIf},
	{"type", token.TkType},
	{"_main", token.TkMain},
	{"global", token.TkGlobal},
	{"endif", token.TkEndif},
	{"endunion", token.TkEndunion},
	{"definetype", token.TkDefinetype},
	{"as", token.TkAs},
	{"call", token.TkCall},
	{"record", token.TkRecord},
	{"endrecord", token.TkEndrecord},
	{"parameter", token.TkParameter},
	{"end", token.TkEnd},
	{"while", token.TkWhile},
	{"union", token.TkUnion},
	{"list", token.TkList},
	{"input", token.TkInput},
}

var keywordLookup = func() map[string]token.Kind {
	m := make(map[string]token.Kind, len(keywordTable))
	for _, e := range keywordTable {
		m[e.lexeme] = e.kind
	}
	return m
}()

// lookupKeyword returns the keyword's token kind, or TkID if lex is not a
// reserved word.
func lookupKeyword(lex string) token.Kind {
	if k, ok := keywordLookup[lex]; ok {
		return k
	}
	return token.TkID
}

// tokenFun resolves a TK_FIELDID-or-keyword lexeme: any reserved word keeps
// its keyword kind, and anything else is a field identifier.
func tokenFun(t *token.Token) {
	t.Kind = lookupKeyword(t.Lexeme)
	if t.Kind == token.TkID {
		t.Kind = token.TkFieldid
	}
}

// idFun resolves a TK_FUNID-or-keyword lexeme (the "_main" spelling is the
// only keyword reachable from this path in practice).
func idFun(t *token.Token) {
	t.Kind = lookupKeyword(t.Lexeme)
	if t.Kind == token.TkID {
		t.Kind = token.TkFunid
	}
}

// doStateActions assigns the token's kind (or category, for the control
// states) once a final DFA state has been reached. line is incremented in
// place for the two states that cross a source line.
func doStateActions(t *token.Token, state int, line *int) {
	switch state {
	case 2:
		*line++
		t.Kind = token.TkComment
	case 4:
		t.Kind = token.TkMul
	case 7:
		t.Kind = token.TkAnd
	case 8:
		t.Kind = token.TkNot
	case 9:
		*line++
		t.Category = token.WhitespaceSkip
		return
	case 12:
		t.Kind = token.TkOr
	case 13:
		t.Kind = token.TkSql
	case 14:
		t.Kind = token.TkMinus
	case 15:
		t.Kind = token.TkPlus
	case 16:
		t.Kind = token.TkOp
	case 18:
		t.Kind = token.TkEq
	case 19:
		t.Kind = token.TkCl
	case 20:
		t.Kind = token.TkSem
	case 21:
		t.Kind = token.TkColon
	case 23:
		t.Kind = token.TkNe
	case 24:
		t.Kind = token.TkDiv
	case 25:
		t.Kind = token.TkDot
	case 26:
		t.Kind = token.TkSqr
	case 64:
		t.Kind = token.TkComma
	case 36:
		t.Kind = token.TkRnum
	case 55:
		t.Kind = token.TkGe
	case 56:
		t.Kind = token.TkGt
	case 58:
		t.Kind = token.TkLe
	case 61:
		t.Kind = token.TkAssignop
	case 37:
		t.Kind = token.TkRnum
	case 38:
		t.Kind = token.TkNum
	case 39:
		t.Kind = token.TkNum
	case 42:
		t.Kind = token.TkRuid
	case 52:
		t.Kind = token.TkID
	case 53:
		t.Kind = token.TkFieldid
	case 62:
		t.Kind = token.TkLt
	case 63:
		t.Kind = token.TkLt
	case 46:
		idFun(t)
	case 49:
		tokenFun(t)
	case 3:
		t.Category = token.EOF
		return
	case 28:
		t.Category = token.WhitespaceSkip
		return
	default:
		t.Category = token.UnknownPattern
	}
}
