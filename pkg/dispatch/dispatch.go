/*
Copyright © 2025 The argbind Authors
SPDX-License-Identifier: Apache-2.0
*/
package dispatch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/argbind/argbind/pkg/errors"
	"github.com/argbind/argbind/pkg/help"
	"github.com/argbind/argbind/pkg/match"
	"github.com/argbind/argbind/pkg/spec"
)

// Exit codes with fixed meaning. Codes from an invoked routine pass through
// masked to the platform's 0..255 status range.
const (
	// ExitOK is returned on success and on help display.
	ExitOK = 0
	// ExitSyntax is reserved exclusively for command-line syntax errors.
	ExitSyntax = 1
	// ExitRoutine is used when the routine fails without supplying its own
	// nonzero code.
	ExitRoutine = 2
)

// Routine is the target of a dispatch: a closure receiving the bound
// argument set. The returned int becomes the process exit code (masked to
// 0..255); a non-nil error is surfaced verbatim on the error stream with the
// routine's code, or ExitRoutine when the routine did not set one.
type Routine func(ctx context.Context, args *Args) (int, error)

// OutcomeKind enumerates the terminal states of one dispatch pass.
type OutcomeKind int

const (
	// OutcomeInvoked means the routine ran; ExitCode carries its mapped
	// result.
	OutcomeInvoked OutcomeKind = iota
	// OutcomeHelpShown means help was rendered and the routine never ran.
	OutcomeHelpShown
	// OutcomeSyntaxError means argv was malformed; Err carries the
	// structured syntax error and the routine never ran.
	OutcomeSyntaxError
)

// Outcome is the terminal result of one dispatch pass over argv.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode int
	// Err is the syntax error for OutcomeSyntaxError, or the routine's own
	// error for a failed OutcomeInvoked.
	Err error
}

// Dispatcher drives one command: it owns the immutable spec, the target
// routine, and the output streams. A Dispatcher performs exactly one pass
// per Run call and keeps no state between runs.
type Dispatcher struct {
	cmd     *spec.Command
	routine Routine
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a Dispatcher writing help to stdout and errors to stderr.
func New(cmd *spec.Command, routine Routine) *Dispatcher {
	return NewWithOutput(cmd, routine, os.Stdout, os.Stderr)
}

// NewWithOutput creates a Dispatcher with explicit output streams, which
// tests and embedding tools use to capture help and error text.
func NewWithOutput(cmd *spec.Command, routine Routine, stdout, stderr io.Writer) *Dispatcher {
	return &Dispatcher{
		cmd:     cmd,
		routine: routine,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Run performs one dispatch pass over argv (program name already stripped).
// A help request anywhere in argv renders help and short-circuits, even when
// other tokens would be syntax errors. A syntax error aborts before the
// routine is invoked and discards any partial binding. Otherwise the routine
// runs with the bound argument set and its result is mapped to an exit code.
func (d *Dispatcher) Run(ctx context.Context, argv []string) Outcome {
	runID := uuid.NewString()
	slog.Debug("dispatch started", "command", d.cmd.Name, "run", runID, "argv", argv)

	tokens := match.Scan(argv)

	if match.HasHelpRequest(tokens) {
		fmt.Fprint(d.stdout, help.Render(d.cmd))
		slog.Debug("dispatch finished", "command", d.cmd.Name, "run", runID, "outcome", "help")
		return Outcome{Kind: OutcomeHelpShown, ExitCode: ExitOK}
	}

	args, err := d.bind(tokens)
	if err != nil {
		slog.Debug("dispatch finished",
			"command", d.cmd.Name, "run", runID, "outcome", "syntax-error", "error", err)
		return Outcome{Kind: OutcomeSyntaxError, ExitCode: ExitSyntax, Err: err}
	}

	code, rerr := d.routine(ctx, args)
	outcome := Outcome{Kind: OutcomeInvoked, ExitCode: mapExit(code, rerr), Err: rerr}
	slog.Debug("dispatch finished",
		"command", d.cmd.Name, "run", runID, "outcome", "invoked", "exit", outcome.ExitCode)
	return outcome
}

// bind builds the argument set: parameter defaults first, overwritten by
// successfully converted option values (last occurrence wins), with the
// positional list accumulated in argv order for the capture slot. The first
// error aborts; nothing partial escapes.
func (d *Dispatcher) bind(tokens []match.Token) (*Args, error) {
	values := make(map[string]any, len(d.cmd.Params()))
	for _, p := range d.cmd.OptionParams() {
		values[p.Name] = p.Default
	}

	var positionals []any
	capture := d.cmd.Capture()

	for _, tok := range tokens {
		if tok.Kind == match.KindPositional {
			if capture == nil {
				return nil, errors.NewWithContext(errors.ErrCodeUnexpectedPositional,
					fmt.Sprintf("unexpected argument %q: command %s takes no positional arguments",
						tok.Raw, d.cmd.Name),
					map[string]any{"raw": tok.Raw})
			}
			v, err := convertValue(capture, tok.Raw)
			if err != nil {
				return nil, err
			}
			positionals = append(positionals, v)
			continue
		}

		p, err := match.Resolve(d.cmd, tok)
		if err != nil {
			return nil, err
		}
		raw, err := match.RawValue(p, tok)
		if err != nil {
			return nil, err
		}
		v, err := convertValue(p, raw)
		if err != nil {
			return nil, err
		}
		values[p.Name] = v
	}

	if capture != nil {
		values[capture.Name] = positionals
	}

	return &Args{values: values, positionals: positionals}, nil
}

func convertValue(p *spec.Param, raw string) (any, error) {
	v, err := p.Converter().Parse(raw)
	if err != nil {
		label := "--" + p.Name
		if p.Capture {
			label = "<" + p.Name + ">"
		}
		return nil, errors.WrapWithContext(errors.ErrCodeConversionFailure,
			fmt.Sprintf("invalid value %q for %s", raw, label),
			err,
			map[string]any{"param": p.Name, "raw": raw})
	}
	return v, nil
}

// mapExit maps a routine result to a process exit code. A clean result is
// masked into the 0..255 status range. A failed routine keeps the nonzero
// code it set, or falls back to ExitRoutine; ExitSyntax stays reserved for
// syntax errors because routines signal failure through their own codes.
func mapExit(code int, err error) int {
	masked := code & 0xff
	if err != nil && masked == 0 {
		return ExitRoutine
	}
	return masked
}

// Main runs one dispatch pass and renders the outcome the way a process
// entry point needs it: syntax and routine errors printed to the error
// stream, the mapped exit code returned for os.Exit.
func (d *Dispatcher) Main(ctx context.Context, argv []string) int {
	outcome := d.Run(ctx, argv)
	if outcome.Err != nil {
		fmt.Fprintln(d.stderr, d.cmd.Name+": "+errorMessage(outcome.Err))
	}
	return outcome.ExitCode
}

// errorMessage strips the structured code prefix for user-facing output;
// the full form still goes to the log.
func errorMessage(err error) string {
	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
