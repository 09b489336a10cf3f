package parsetable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mimic/internal/compiler/firstfollow"
	"github.com/dekarrin/mimic/internal/compiler/grammar"
)

func Test_Build_Lookup(t *testing.T) {
	sets := firstfollow.Compute(grammar.Productions, grammar.NProgram)
	table := Build(grammar.Productions, sets)

	t.Run("no extra-sync column is TABLE_ERROR in any non-terminal row", func(t *testing.T) {
		for nt := grammar.NonTerminalsStart; nt < grammar.NonTerminalsEnd; nt++ {
			for _, col := range extraSyncColumns {
				cell := table.Lookup(nt, col)
				assert.NotEqual(t, grammar.TableError, cell, "%s x %s", nt.Name(), col.Name())
			}
		}
	})

	t.Run("a cell outside FIRST/FOLLOW of its row is TABLE_ERROR or SYNC, never garbage", func(t *testing.T) {
		cell := table.Lookup(grammar.NProgram, grammar.SEndrecord)
		assert.True(t, cell == grammar.TableError || cell == grammar.Syncro)
	})
}
