package firstfollow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mimic/internal/compiler/grammar"
)

func Test_Compute_Program(t *testing.T) {
	sets := Compute(grammar.Productions, grammar.NProgram)

	t.Run("FOLLOW of the start symbol contains the end marker", func(t *testing.T) {
		assert.True(t, sets.Follow[grammar.NProgram][grammar.EndMarker])
	})

	t.Run("every non-terminal has a non-empty FIRST set", func(t *testing.T) {
		for nt := grammar.NonTerminalsStart; nt < grammar.NonTerminalsEnd; nt++ {
			assert.NotEmpty(t, sets.First[nt], "FIRST(%s) is empty", nt.Name())
		}
	})

	t.Run("FIRST of a terminal is itself", func(t *testing.T) {
		assert.Equal(t, map[grammar.SymbolID]bool{grammar.SMain: true}, sets.First[grammar.SMain])
	})
}

func Test_FirstOfProduction(t *testing.T) {
	sets := Compute(grammar.Productions, grammar.NProgram)

	t.Run("FIRST of a production starting with a terminal is just that terminal", func(t *testing.T) {
		prod := grammar.Production{LHS: grammar.NProgram, RHS: []grammar.SymbolID{grammar.SMain}}
		first, nullable := sets.FirstOfProduction(prod)
		assert.False(t, nullable)
		assert.True(t, first[grammar.SMain])
	})
}
