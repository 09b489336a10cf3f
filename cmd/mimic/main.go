/*
Mimic runs the lexer and predictive parser over a source file.

Usage:

	mimic [flags] SOURCE

The flags are:

	-v, --version
		Give the current version of mimic and then exit.

	-c, --config FILE
		Load run configuration (buffer size, history db, artifact dir) from
		the given TOML file. Defaults to "mimic.toml" if present, otherwise
		built-in defaults are used.

	-x, --exec COMMANDS
		Immediately run the given menu command(s) and exit instead of
		starting the interactive menu. Commands are numbers 1-4, separated
		by ";", matching the interactive menu's own options.

	--strip, --tokens, --parse, --time
		One-shot equivalents of menu options 1-4, for scripted use without
		assembling an --exec string. They may be combined with each other and
		with --exec: the flags run first, in strip, tokens, parse, time order,
		followed by the --exec commands.

	-d, --direct
		Force reading menu choices directly from stdin instead of using GNU
		readline based routines, even in an interactive terminal.

As an alternative to SOURCE, "mimic history" lists past runs recorded in
the configured history db, and "mimic history RUN-ID" shows one run's
diagnostics and parse tree.

Once started without --exec or a one-shot flag, mimic presents a menu:

	1 - remove comments from the source and print the result
	2 - print the token stream
	3 - parse and print the resulting parse tree
	4 - parse and report how long lexing and parsing took
	0 - quit
*/
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"

	"github.com/dekarrin/mimic/internal/cerrors"
	"github.com/dekarrin/mimic/internal/config"
	"github.com/dekarrin/mimic/internal/mimic"
	"github.com/dekarrin/mimic/internal/runstore"
	"github.com/dekarrin/mimic/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitRunError indicates an unsuccessful program execution due to a
	// problem while running a command.
	ExitRunError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the session.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	configFile  = pflag.StringP("config", "c", "mimic.toml", "TOML file with run configuration")
	execCmds    = pflag.StringP("exec", "x", "", "Immediately run the given menu command(s), separated by ';', and exit")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading menu choices directly from stdin")
	flagStrip   = pflag.Bool("strip", false, "One-shot equivalent of menu option 1 (remove comments)")
	flagTokens  = pflag.Bool("tokens", false, "One-shot equivalent of menu option 2 (print tokens)")
	flagParse   = pflag.Bool("parse", false, "One-shot equivalent of menu option 3 (parse)")
	flagTime    = pflag.Bool("time", false, "One-shot equivalent of menu option 4 (parse, timed)")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if pflag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: a source file argument (or \"history\") is required")
		returnCode = ExitInitError
		return
	}

	cfg := config.Config{}
	if _, err := os.Stat(*configFile); err == nil {
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	}
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if pflag.Arg(0) == "history" {
		if err := runHistory(cfg, pflag.Args()[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitRunError
			return
		}
		return
	}
	sourcePath := pflag.Arg(0)

	sess := mimic.New(sourcePath, cfg.BufferSize, os.Stdout)
	sess.ArtifactDir = cfg.ArtifactDir

	if cfg.HistoryDB != "" {
		store, err := runstore.Open(cfg.HistoryDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		defer store.Close()
		sess.History = store
	}

	menu := newMenu(sess)

	var oneShot []string
	if *flagStrip {
		oneShot = append(oneShot, "1")
	}
	if *flagTokens {
		oneShot = append(oneShot, "2")
	}
	if *flagParse {
		oneShot = append(oneShot, "3")
	}
	if *flagTime {
		oneShot = append(oneShot, "4")
	}
	if *execCmds != "" {
		for _, choice := range strings.Split(*execCmds, ";") {
			choice = strings.TrimSpace(choice)
			if choice != "" {
				oneShot = append(oneShot, choice)
			}
		}
	}

	if len(oneShot) > 0 {
		for _, choice := range oneShot {
			if err := menu.run(choice); err != nil {
				if err == errQuit {
					return
				}
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
				returnCode = ExitRunError
				return
			}
		}
		return
	}

	reader, err := newMenuReader(*forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer reader.Close()

	if err := runMenuLoop(menu, reader); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitRunError
		return
	}
}

// runHistory implements the "mimic history [RUN-ID]" subcommand: with no
// argument it lists every recorded run; with a run ID it prints that run's
// diagnostics and parse tree.
func runHistory(cfg config.Config, args []string) error {
	if cfg.HistoryDB == "" {
		return cerrors.New("history", "no history db is configured")
	}
	store, err := runstore.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if len(args) == 0 {
		runs, err := store.List(ctx)
		if err != nil {
			return err
		}
		for _, r := range runs {
			status := "clean"
			if !r.Clean {
				status = "errors"
			}
			fmt.Printf("%s  %s  %s  %s\n", r.ID, r.Created.Format("2006-01-02 15:04:05"), status, r.SourceHash)
		}
		return nil
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return cerrors.Wrapf(err, "invalid run id %q", args[0])
	}
	run, err := store.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("run %s (%s)\n", run.ID, run.Created.Format("2006-01-02 15:04:05"))
	fmt.Printf("source hash: %s\n", run.SourceHash)
	if run.Clean {
		fmt.Println("parse completed with no errors")
	} else {
		fmt.Println(mimic.FormatDiagnostics(run.Diagnostics))
	}
	fmt.Println(run.TreeText)
	return nil
}

// menu dispatches each of driver's five numbered commands against a
// session.
type menu struct {
	sess *mimic.Session
}

func newMenu(sess *mimic.Session) *menu {
	return &menu{sess: sess}
}

var errQuit = cerrors.New("quit", "quit requested")

func (m *menu) run(choice string) error {
	switch choice {
	case "0":
		return errQuit
	case "1":
		return m.sess.StripComments(os.Stdout)
	case "2":
		return m.sess.PrintTokens(os.Stdout)
	case "3":
		pr, err := m.sess.Parse()
		if err != nil {
			return err
		}
		return m.report(pr)
	case "4":
		pr, err := m.sess.Parse()
		if err != nil {
			return err
		}
		if err := m.report(pr); err != nil {
			return err
		}
		fmt.Println(mimic.FormatTiming(pr.Elapsed))
		return nil
	default:
		// unrecognized input exits with success, same as "0" (driver.c's
		// menu switch falls through to its "quit" default case).
		return errQuit
	}
}

func (m *menu) report(pr mimic.ParseResult) error {
	if pr.Result.Clean {
		fmt.Println("parse completed with no errors")
	} else {
		fmt.Println(mimic.FormatDiagnostics(pr.Result.Diagnostics))
	}
	if err := m.sess.RecordHistory(context.Background(), pr); err != nil {
		return err
	}
	return nil
}

func runMenuLoop(m *menu, r menuReader) error {
	for {
		fmt.Println("0 - quit")
		fmt.Println("1 - remove comments")
		fmt.Println("2 - print tokens")
		fmt.Println("3 - parse")
		fmt.Println("4 - parse (timed)")

		choice, err := r.ReadChoice()
		if err != nil {
			return err
		}
		choice = strings.TrimSpace(choice)
		if choice == "" {
			continue
		}

		fields, err := shellquote.Split(choice)
		if err != nil || len(fields) == 0 {
			fmt.Fprintln(os.Stderr, "ERROR: could not read choice")
			continue
		}

		if err := m.run(fields[0]); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		}
	}
}
