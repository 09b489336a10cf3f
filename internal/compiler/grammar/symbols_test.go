package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mimic/internal/compiler/token"
)

func Test_SymbolID_NameAndKind(t *testing.T) {
	t.Run("terminal names round-trip through the fixed array", func(t *testing.T) {
		assert.Equal(t, "TK_MAIN", SMain.Name())
		assert.Equal(t, "TK_ID", SID.Name())
	})

	t.Run("non-terminal names round-trip", func(t *testing.T) {
		assert.Equal(t, "program", NProgram.Name())
	})

	t.Run("IsTerminal and IsNonTerminal partition the space", func(t *testing.T) {
		assert.True(t, SMain.IsTerminal())
		assert.False(t, SMain.IsNonTerminal())
		assert.True(t, NProgram.IsNonTerminal())
		assert.False(t, NProgram.IsTerminal())
		assert.False(t, EndMarker.IsTerminal())
		assert.False(t, EndMarker.IsNonTerminal())
	})
}

func Test_SymbolOf(t *testing.T) {
	t.Run("every terminal token kind maps to a symbol", func(t *testing.T) {
		sym, ok := SymbolOf(token.TkMain)
		assert.True(t, ok)
		assert.Equal(t, SMain, sym)
	})

	t.Run("unmapped kind reports false", func(t *testing.T) {
		_, ok := SymbolOf(token.Kind(9999))
		assert.False(t, ok)
	})
}

func Test_Productions_LHSAreNonTerminals(t *testing.T) {
	for i, p := range Productions {
		assert.True(t, p.LHS.IsNonTerminal(), "production %d has non-non-terminal LHS %s", i+1, p.LHS.Name())
	}
}
