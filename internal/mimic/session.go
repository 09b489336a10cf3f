// Package mimic wires together the lexer, parser, and supporting artifact
// writers into the interactive session a CLI front-end drives: the same
// "pick a numbered command" loop the reference driver offered, reworked
// into a Go command dispatch.
package mimic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/dekarrin/rosed"

	"github.com/dekarrin/mimic/internal/cerrors"
	"github.com/dekarrin/mimic/internal/compiler/comments"
	"github.com/dekarrin/mimic/internal/compiler/firstfollow"
	"github.com/dekarrin/mimic/internal/compiler/format"
	"github.com/dekarrin/mimic/internal/compiler/grammar"
	"github.com/dekarrin/mimic/internal/compiler/lex"
	"github.com/dekarrin/mimic/internal/compiler/parser"
	"github.com/dekarrin/mimic/internal/compiler/parsetable"
	"github.com/dekarrin/mimic/internal/compiler/parsetree"
	"github.com/dekarrin/mimic/internal/compiler/token"
	"github.com/dekarrin/mimic/internal/runstore"
)

// Session holds the pieces a single invocation needs: the source file, the
// pre-built parse table shared across every run against it, and an
// optional history store.
type Session struct {
	SourcePath  string
	BufferSize  int
	Out         io.Writer
	History     *runstore.Store
	ArtifactDir string

	table *parsetable.Table
	sets  firstfollow.Sets
}

// New creates a Session and eagerly computes the FIRST/FOLLOW sets and
// parse table, since the parse commands below need them and the reference
// driver itself built them once, lazily, on first use.
func New(sourcePath string, bufferSize int, out io.Writer) *Session {
	sets := firstfollow.Compute(grammar.Productions, grammar.NProgram)
	table := parsetable.Build(grammar.Productions, sets)
	return &Session{
		SourcePath: sourcePath,
		BufferSize: bufferSize,
		Out:        out,
		sets:       sets,
		table:      table,
	}
}

func (s *Session) openSource() (*os.File, error) {
	f, err := os.Open(s.SourcePath)
	if err != nil {
		return nil, cerrors.Wrapf(err, "could not open %s", s.SourcePath)
	}
	return f, nil
}

// StripComments writes src with every comment removed to w.
func (s *Session) StripComments(w io.Writer) error {
	f, err := s.openSource()
	if err != nil {
		return err
	}
	defer f.Close()

	return comments.Strip(f, w, nil)
}

// PrintTokens writes one formatted line per token scanned from the source,
// including comments and lexical errors, the way the reference token dump
// mode did.
func (s *Session) PrintTokens(w io.Writer) error {
	f, err := s.openSource()
	if err != nil {
		return err
	}
	defer f.Close()

	l := lex.New(f, s.BufferSize)
	var toks []token.Token
	for {
		t := l.Next()
		if t.Category == token.EOF {
			break
		}
		toks = append(toks, t)
	}
	format.Tokens(w, toks)
	return nil
}

// ParseResult bundles everything a parse command produces.
type ParseResult struct {
	Result     parser.Result
	Elapsed    time.Duration
	SourceHash string
}

// Parse lexes and parses the source, writes the FIRST/FOLLOW/parse-table
// dumps to the artifact directory, and optionally prints the resulting
// tree.
func (s *Session) Parse() (ParseResult, error) {
	f, err := s.openSource()
	if err != nil {
		return ParseResult{}, err
	}
	defer f.Close()

	src, err := io.ReadAll(f)
	if err != nil {
		return ParseResult{}, cerrors.Wrap(err, "could not read source", "")
	}

	start := time.Now()
	l := lex.New(bytes.NewReader(src), s.BufferSize)
	res := parser.Parse(l, s.table)
	elapsed := time.Since(start)

	if err := s.writeArtifacts(res); err != nil {
		return ParseResult{}, err
	}

	return ParseResult{
		Result:     res,
		Elapsed:    elapsed,
		SourceHash: runstore.HashSource(src),
	}, nil
}

func (s *Session) writeArtifacts(res parser.Result) error {
	dir := s.ArtifactDir
	if dir == "" {
		dir = "."
	}

	firstOut, err := os.Create(dir + "/first_out.txt")
	if err != nil {
		return cerrors.Wrap(err, "could not write first_out.txt", "")
	}
	defer firstOut.Close()
	format.FirstSets(firstOut, s.sets)

	followOut, err := os.Create(dir + "/follow_out.txt")
	if err != nil {
		return cerrors.Wrap(err, "could not write follow_out.txt", "")
	}
	defer followOut.Close()
	format.FollowSets(followOut, s.sets)

	tableOut, err := os.Create(dir + "/parse_table_output.txt")
	if err != nil {
		return cerrors.Wrap(err, "could not write parse_table_output.txt", "")
	}
	defer tableOut.Close()
	format.ParseTable(tableOut, s.table)

	if res.Clean {
		treeOut, err := os.Create(dir + "/parser_output.txt")
		if err != nil {
			return cerrors.Wrap(err, "could not write parser_output.txt", "")
		}
		defer treeOut.Close()
		parsetree.Print(treeOut, res.Tree)
	}

	return nil
}

// TreeText renders the parse tree to a string, for history persistence.
func TreeText(tree *parsetree.Node) string {
	var buf bytes.Buffer
	parsetree.Print(&buf, tree)
	return buf.String()
}

// RecordHistory saves a parse run to the session's history store, if one is
// configured.
func (s *Session) RecordHistory(ctx context.Context, pr ParseResult) error {
	if s.History == nil {
		return nil
	}
	treeText := ""
	if pr.Result.Clean {
		treeText = TreeText(pr.Result.Tree)
	}
	_, err := s.History.Record(ctx, pr.SourceHash, pr.Result.Clean, pr.Result.Diagnostics, treeText)
	return err
}

// FormatTiming renders a timing report combining the raw elapsed duration
// with a human-readable approximation, matching the reference timing
// command's two-line report plus a humanized summary.
func FormatTiming(elapsed time.Duration) string {
	return fmt.Sprintf(
		"Total time for lexing and parsing: %v\nHuman-readable: %s",
		elapsed, humanize.RelTime(time.Now().Add(-elapsed), time.Now(), "", ""),
	)
}

// consoleOutputWidth is the column at which diagnostic text wraps, matching
// the teacher's own console formatting width.
const consoleOutputWidth = 80

// FormatDiagnostics renders diagnostics as word-wrapped console text, one
// per line, instead of letting long messages run off the terminal
// unwrapped.
func FormatDiagnostics(diags []cerrors.Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = d.String()
	}
	joined := strings.Join(lines, "\n")
	return rosed.Edit(joined).Wrap(consoleOutputWidth).String()
}
