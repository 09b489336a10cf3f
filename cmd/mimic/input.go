package main

import (
	"os"

	isatty "github.com/mattn/go-isatty"

	"github.com/dekarrin/mimic/internal/input"
)

func isTerminalStdin() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// menuReader supplies one menu choice at a time, either from an interactive
// readline prompt or directly from stdin.
type menuReader interface {
	ReadChoice() (string, error)
	Close() error
}

type directMenuReader struct {
	r *input.DirectCommandReader
}

func (d *directMenuReader) ReadChoice() (string, error) {
	return d.r.ReadCommand()
}

func (d *directMenuReader) Close() error {
	return d.r.Close()
}

type interactiveMenuReader struct {
	r *input.InteractiveCommandReader
}

func (i *interactiveMenuReader) ReadChoice() (string, error) {
	return i.r.ReadCommand()
}

func (i *interactiveMenuReader) Close() error {
	return i.r.Close()
}

func newMenuReader(forceDirect bool) (menuReader, error) {
	if !forceDirect && isTerminalStdin() {
		r, err := input.NewInteractiveReader()
		if err != nil {
			return nil, err
		}
		r.SetPrompt("choice: ")
		return &interactiveMenuReader{r: r}, nil
	}
	return &directMenuReader{r: input.NewDirectReader(os.Stdin)}, nil
}
