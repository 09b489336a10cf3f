// Package token defines the classified-token vocabulary produced by the
// lexer and consumed by the parser.
package token

import "fmt"

// Kind is the closed set of terminal kinds this language's lexer produces.
// The ordering matches the reference lexer's state-action table, not the
// parser's symbol numbering (see grammar.SymbolID for that).
type Kind int

const (
	TkMinus Kind = iota
	TkIf
	TkDiv
	TkCall
	TkWith
	TkMain
	TkEndwhile
	TkType
	TkElse
	TkInt
	TkNot
	TkGt
	TkParameters
	TkThen
	TkSem
	TkReturn
	TkID
	TkDefinetype
	TkOp
	TkWhile
	TkOr
	TkFunid
	TkComma
	TkInput
	TkUnion
	TkRecord
	TkDot
	TkRuid
	TkWrite
	TkEndunion
	TkFieldid
	TkList
	TkAnd
	TkCl
	TkAssignop
	TkOutput
	TkEq
	TkEndif
	TkGlobal
	TkAs
	TkColon
	TkNe
	TkGe
	TkLe
	TkSqr
	TkEnd
	TkPlus
	TkEndrecord
	TkRead
	TkLt
	TkSql
	TkNum
	TkRnum
	TkParameter
	TkMul
	TkReal
	TkEps
	TkEOF
	TkComment
	TkErr
)

var names = [...]string{
	"TK_MINUS", "TK_IF", "TK_DIV", "TK_CALL", "TK_WITH", "TK_MAIN",
	"TK_ENDWHILE", "TK_TYPE", "TK_ELSE", "TK_INT", "TK_NOT", "TK_GT",
	"TK_PARAMETERS", "TK_THEN", "TK_SEM", "TK_RETURN", "TK_ID",
	"TK_DEFINETYPE", "TK_OP", "TK_WHILE", "TK_OR", "TK_FUNID", "TK_COMMA",
	"TK_INPUT", "TK_UNION", "TK_RECORD", "TK_DOT", "TK_RUID", "TK_WRITE",
	"TK_ENDUNION", "TK_FIELDID", "TK_LIST", "TK_AND", "TK_CL", "TK_ASSIGNOP",
	"TK_OUTPUT", "TK_EQ", "TK_ENDIF", "TK_GLOBAL", "TK_AS", "TK_COLON",
	"TK_NE", "TK_GE", "TK_LE", "TK_SQR", "TK_END", "TK_PLUS", "TK_ENDRECORD",
	"TK_READ", "TK_LT", "TK_SQL", "TK_NUM", "TK_RNUM", "TK_PARAMETER",
	"TK_MUL", "TK_REAL", "TK_EPS", "TK_EOF", "TK_COMMENT", "TK_ERR",
}

// String returns the fixed printed name for k, or "UNKNOWN_TOKEN" if k is
// out of range.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return "UNKNOWN_TOKEN"
	}
	return names[k]
}

// Category tags how a scanned lexeme should be treated by callers.
type Category int

const (
	// Normal is a well-formed token ready for the parser.
	Normal Category = iota
	// LengthExceeded is a well-formed but overlong identifier.
	LengthExceeded
	// UnknownPattern is a lexeme with no DFA transition from the start state,
	// or an in-progress scan that fell into the trap state.
	UnknownPattern
	// EOF signals the input is exhausted. The parser stops on it rather
	// than matching it against the grammar.
	EOF
	// WhitespaceSkip marks control tokens (blanks and newlines) that the
	// lexer consumes internally and never emits to a consumer.
	WhitespaceSkip
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "NORMAL"
	case LengthExceeded:
		return "LENGTH_EXCEEDED"
	case UnknownPattern:
		return "UNKNOWN_PATTERN"
	case EOF:
		return "EOF"
	case WhitespaceSkip:
		return "WHITESPACE_SKIP"
	default:
		return "UNKNOWN_CATEGORY"
	}
}

// Token is a single classified lexeme.
type Token struct {
	Kind     Kind
	Lexeme   string
	Line     int
	Category Category
}

func (t Token) String() string {
	return fmt.Sprintf("Line no. %d\t Lexeme %-10s\t Token %s", t.Line, t.Lexeme, t.Kind)
}

// FunidMaxLength and VaridMaxLength are the identifier length bounds: a
// lexeme of exactly the bound is accepted, and a longer match is still
// returned, tagged LengthExceeded.
const (
	FunidMaxLength = 30
	VaridMaxLength = 20
)
