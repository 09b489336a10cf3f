// Package cerrors provides the error type used across the compiler
// pipeline: every error carries both a short console-facing message and the
// full technical description, and may wrap an underlying cause.
package cerrors

import "fmt"

// compilerError is an error produced while reading, lexing, or parsing
// source text. It carries a message meant for the console as well as the
// full technical Error() string.
type compilerError struct {
	msg     string
	console string
	wrap    error
}

func (e *compilerError) Error() string {
	return e.msg
}

// ConsoleMessage shows the message that should be printed to the console to
// describe the error.
func (e *compilerError) ConsoleMessage() string {
	return e.console
}

func (e *compilerError) Unwrap() error {
	return e.wrap
}

// New returns a new error that has both the message to show on the console
// and the technical description of the error.
func New(console, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got compilerError(%q)", console)
	}
	return &compilerError{msg: technical, console: console}
}

// Newf is like New but builds the console message from a format string.
func Newf(consoleFormat string, a ...interface{}) error {
	return New(fmt.Sprintf(consoleFormat, a...), "")
}

// Wrap returns a new error that has both the message to show on the console
// and the technical description of the error, and that wraps e.
func Wrap(e error, console, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got compilerError(%q)", console)
	}
	return &compilerError{msg: technical, console: console, wrap: e}
}

// Wrapf is like Wrap but builds the console message from a format string.
func Wrapf(e error, consoleFormat string, a ...interface{}) error {
	return Wrap(e, fmt.Sprintf(consoleFormat, a...), "")
}

// ConsoleMessage gets the message to display on the console for the given
// error. If it is one produced by this package, the console-facing message
// is returned; otherwise err.Error() is returned.
func ConsoleMessage(err error) string {
	if cErr, ok := err.(*compilerError); ok {
		return cErr.ConsoleMessage()
	}
	return err.Error()
}

// Diagnostic is a single lexical or syntactic problem surfaced during a run.
// Diagnostics never abort a run; they accumulate so analysis can continue
// over the rest of the input, per the panic-mode recovery strategy.
type Diagnostic struct {
	Line    int
	Kind    string // "lexical" or "syntactic"
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s error] line %d: %s", d.Kind, d.Line, d.Message)
}
