package lex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mimic/internal/compiler/token"
)

func allTokens(input string) []token.Token {
	l := New(strings.NewReader(input), 0)
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Category == token.EOF {
			break
		}
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func Test_Lex_kindSequence(t *testing.T) {
	t.Run("empty input yields only EOF", func(t *testing.T) {
		toks := allTokens("")
		assert.Len(t, toks, 1)
		assert.Equal(t, token.EOF, toks[0].Category)
	})

	t.Run("keyword vs field identifier", func(t *testing.T) {
		toks := allTokens("while x")
		assert.Equal(t, token.TkWhile, toks[0].Kind)
		assert.Equal(t, token.TkFieldid, toks[1].Kind)
	})

	t.Run("_main is a keyword not a function identifier", func(t *testing.T) {
		toks := allTokens("_main")
		assert.Equal(t, token.TkMain, toks[0].Kind)
	})

	t.Run("underscore-prefixed name is a function identifier", func(t *testing.T) {
		toks := allTokens("_account")
		assert.Equal(t, token.TkFunid, toks[0].Kind)
	})

	t.Run("integer literal", func(t *testing.T) {
		toks := allTokens("42")
		assert.Equal(t, token.TkNum, toks[0].Kind)
		assert.Equal(t, "42", toks[0].Lexeme)
	})

	t.Run("real literal with exponent", func(t *testing.T) {
		toks := allTokens("3.14E+21")
		assert.Equal(t, token.TkRnum, toks[0].Kind)
		assert.Equal(t, "3.14E+21", toks[0].Lexeme)
	})

	t.Run("integer followed by dot is NUM then DOT, not a bad real", func(t *testing.T) {
		toks := allTokens("3.x")
		assert.Equal(t, token.TkNum, toks[0].Kind)
		assert.Equal(t, token.TkDot, toks[1].Kind)
	})

	t.Run("hash-prefixed record variable id", func(t *testing.T) {
		toks := allTokens("#record")
		assert.Equal(t, token.TkRuid, toks[0].Kind)
		assert.Equal(t, "#record", toks[0].Lexeme)
	})

	t.Run("underscore-prefixed name is a function id, even if capitalized", func(t *testing.T) {
		toks := allTokens("_Record1")
		assert.Equal(t, token.TkFunid, toks[0].Kind)
	})

	t.Run("field id is a lowercase keyword-style identifier", func(t *testing.T) {
		toks := allTokens("fieldname")
		assert.Equal(t, token.TkFieldid, toks[0].Kind)
	})

	t.Run("comparison operators", func(t *testing.T) {
		toks := allTokens("< <= <--- > >=")
		assert.Equal(t, []token.Kind{
			token.TkLt, token.TkLe, token.TkAssignop, token.TkGt, token.TkGe,
		}, kinds(toks)[:5])
	})

	t.Run("comment is consumed but still materialized as a token", func(t *testing.T) {
		toks := allTokens("% this is a comment\nwhile")
		assert.Equal(t, token.TkComment, toks[0].Kind)
		assert.Equal(t, token.Normal, toks[0].Category)
		assert.Equal(t, token.TkWhile, toks[1].Kind)
	})

	t.Run("whitespace and newlines never reach the consumer", func(t *testing.T) {
		toks := allTokens("  \t\n\n  while")
		assert.Equal(t, token.TkWhile, toks[0].Kind)
	})

	t.Run("unknown pattern falls to the trap state", func(t *testing.T) {
		toks := allTokens("?")
		assert.Equal(t, token.UnknownPattern, toks[0].Category)
		assert.Equal(t, "?", toks[0].Lexeme)
	})

	t.Run("overlong function id is tagged length exceeded", func(t *testing.T) {
		toks := allTokens("_" + strings.Repeat("a", 31))
		assert.Equal(t, token.TkFunid, toks[0].Kind)
		assert.Equal(t, token.LengthExceeded, toks[0].Category)
	})
}

func Test_Lex_lineTracking(t *testing.T) {
	toks := allTokens("while\nif\nendwhile")
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}
