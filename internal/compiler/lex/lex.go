// Package lex implements the explicit-state DFA lexer: a maximal-munch
// scanner built on top of a reader.TwinBuffer, producing the classified
// tokens consumed by the parser.
package lex

import (
	"io"

	"github.com/dekarrin/mimic/internal/compiler/reader"
	"github.com/dekarrin/mimic/internal/compiler/token"
)

// funidMax and varidMax alias the identifier length bounds token carries
// (FunidMaxLength and VaridMaxLength), so the length check below reads the same as the reference
// driver's FUNMAX/VARMAX constants.
const (
	funidMax = token.FunidMaxLength
	varidMax = token.VaridMaxLength
)

// Lexer scans a source into a stream of token.Token values.
type Lexer struct {
	buf  *reader.TwinBuffer
	line int
}

// New creates a Lexer reading from src. A bufSize of 0 uses
// reader.DefaultBufferSize.
func New(src io.Reader, bufSize int) *Lexer {
	return &Lexer{
		buf:  reader.New(src, bufSize),
		line: 1,
	}
}

// Next scans and returns the next token meaningful to a consumer: blanks,
// newlines, and run-on comment bodies are consumed internally and never
// returned. A TK_COMMENT token IS returned (with category Normal, per the
// reference lexer) since filtering it is the parser's job, not the lexer's.
// The final token from a well-formed source has category EOF.
func (l *Lexer) Next() token.Token {
	for {
		t := l.scanOne()
		if t.Category == token.WhitespaceSkip {
			continue
		}
		return t
	}
}

// scanOne runs the DFA to completion for a single token, starting fresh
// from state 0. It is the iterative restatement of the reference
// getNextToken's tail recursion: state and the in-progress lexeme both
// reset each call, and carry forward only across the loop's own
// iterations, exactly as they did across getNextToken's recursive calls
// within one token.
func (l *Lexer) scanOne() token.Token {
	var lexeme []byte
	state := 0
	startLine := l.line

	for {
		ch := l.buf.Next()
		nextState := getState(ch, state)

		if nextState == trapState {
			t := token.Token{Line: startLine, Category: token.UnknownPattern}
			if len(lexeme) >= 1 {
				l.buf.Retract(1)
			} else {
				lexeme = append(lexeme, byte(ch))
			}
			t.Lexeme = string(lexeme)
			return t
		}

		detail := getStateDetails(l.buf, nextState)

		if !(state == 1 && len(lexeme) >= 1) {
			if detail != finalRetractOnce && detail != finalRetractTwice {
				lexeme = append(lexeme, byte(ch))
			}
		}

		if detail == finalRetractTwice && len(lexeme) >= 1 {
			lexeme = lexeme[:len(lexeme)-1]
		}

		if detail != nonFinal {
			t := token.Token{Lexeme: string(lexeme), Line: startLine}
			doStateActions(&t, nextState, &l.line)
			if nextState != 28 {
				if (t.Kind == token.TkFunid && len(lexeme) > funidMax) ||
					(t.Kind == token.TkID && len(lexeme) > varidMax) {
					t.Category = token.LengthExceeded
				}
			}
			return t
		}

		state = nextState
	}
}
