package comments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Strip(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no comment", "x := 1;\n", "x := 1;\n"},
		{"trailing comment", "x := 1; % set x\n", "x := 1; \n"},
		{"whole-line comment", "% just a comment\n", "\n"},
		{"comment then code on next line", "% c1\ny := 2;\n", "\ny := 2;\n"},
		{"no trailing newline after comment", "x := 1; % c", "x := 1; "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out strings.Builder
			err := Strip(strings.NewReader(c.input), &out, nil)
			assert.NoError(t, err)
			assert.Equal(t, c.want, out.String())
		})
	}
}
