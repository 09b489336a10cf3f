package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mimic/internal/compiler/firstfollow"
	"github.com/dekarrin/mimic/internal/compiler/grammar"
	"github.com/dekarrin/mimic/internal/compiler/lex"
	"github.com/dekarrin/mimic/internal/compiler/parsetable"
)

func buildTable() *parsetable.Table {
	sets := firstfollow.Compute(grammar.Productions, grammar.NProgram)
	return parsetable.Build(grammar.Productions, sets)
}

func Test_Parse_MinimalValidProgram(t *testing.T) {
	table := buildTable()
	l := lex.New(strings.NewReader("_main\nreturn;\nend\n"), 0)

	res := Parse(l, table)

	assert.True(t, res.Clean, "diagnostics: %v", res.Diagnostics)
	assert.Equal(t, grammar.NProgram, res.Tree.Symbol)
}

func Test_Parse_MissingSemicolonRecovers(t *testing.T) {
	table := buildTable()
	l := lex.New(strings.NewReader("_main\nreturn\nend\n"), 0)

	res := Parse(l, table)

	assert.False(t, res.Clean)
	assert.NotEmpty(t, res.Diagnostics)
	// parsing still produces a complete tree rooted at the start symbol,
	// never aborting on the first error.
	assert.Equal(t, grammar.NProgram, res.Tree.Symbol)
}
