// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dispatch invokes handlers from a fixed command table.
//
// The table is an ordered list of [Command] values. Lookup is an exact,
// case-sensitive linear scan: when two entries share a name, the one
// that comes first wins.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/bassosimone/cmdtab/internal/tokenize"
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

var (
	// ErrUnknownCommand indicates that no table entry matches the command name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNoCommand indicates that there were no tokens to dispatch.
	ErrNoCommand = errors.New("no command")
)

// Handler runs a command with the tokens following its name.
//
// args is nil when the command name was the only token. A handler reports
// its own failures by writing to stdout; they never reach the caller.
type Handler func(ctx context.Context, stdout io.Writer, args []string)

// Command is an entry of the dispatch table.
type Command struct {
	// Name is matched exactly against the first token.
	Name string

	// Handler runs the command.
	Handler Handler

	// Help is a one-line description used in usage messages.
	Help string
}

// Dispatcher matches tokens against a command table.
//
// Construct using [New].
type Dispatcher struct {
	commands []Command
	stdout   io.Writer
}

// New returns a [*Dispatcher] for the given table. Handlers write to stdout.
//
// It panics if a command has an empty name or a nil handler.
func New(stdout io.Writer, commands ...Command) *Dispatcher {
	runtimex.Assert(stdout != nil)
	first := make(map[string]int, len(commands))
	for idx, cmd := range commands {
		runtimex.Assert(cmd.Name != "")
		runtimex.Assert(cmd.Handler != nil)
		if prev, found := first[cmd.Name]; found {
			slog.Warn(
				"duplicate command name",
				slog.String("name", cmd.Name),
				slog.Int("winner", prev),
				slog.Int("shadowed", idx),
			)
			continue
		}
		first[cmd.Name] = idx
	}
	return &Dispatcher{
		commands: slices.Clone(commands),
		stdout:   stdout,
	}
}

// Commands returns a copy of the command table.
func (d *Dispatcher) Commands() []Command {
	return slices.Clone(d.commands)
}

// Lookup returns the first command named name.
func (d *Dispatcher) Lookup(name string) (Command, bool) {
	for _, cmd := range d.commands {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}

// Dispatch runs the command named by tokens[0] with the remaining tokens.
//
// When no command matches, it writes "unknown command: NAME" to stdout and
// returns an error wrapping [ErrUnknownCommand]. Empty tokens yield
// [ErrNoCommand]. What the handler itself prints does not affect the result.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string) error {
	if len(tokens) <= 0 {
		return ErrNoCommand
	}
	name := tokens[0]
	tr := newTrace(ctx, tokens)

	cmd, found := d.Lookup(name)
	if !found {
		tr.start(false)
		fmt.Fprintf(d.stdout, "unknown command: %s\n", name)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	var args []string
	if len(tokens) > 1 {
		args = slices.Clip(tokens[1:])
	}

	tr.start(true)
	cmd.Handler(ctx, d.stdout, args)
	tr.done()
	return nil
}

// trace emits the debug records of a single dispatch.
//
// The zero value is disabled and does nothing.
type trace struct {
	ctx     context.Context
	enabled bool
	id      string
	argv    string
	t0      time.Time
}

// newTrace returns an enabled trace only when debug logging is on.
func newTrace(ctx context.Context, tokens []string) *trace {
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return &trace{}
	}
	return &trace{
		ctx:     ctx,
		enabled: true,
		id:      uuid.NewString(),
		argv:    shellquote.Join(tokens...),
	}
}

func (t *trace) start(found bool) {
	if !t.enabled {
		return
	}
	t.t0 = time.Now()
	slog.DebugContext(t.ctx, "dispatch", slog.String("id", t.id), slog.String("argv", t.argv), slog.Bool("found", found))
}

func (t *trace) done() {
	if !t.enabled {
		return
	}
	slog.DebugContext(t.ctx, "dispatch done", slog.String("id", t.id), slog.Duration("elapsed", time.Since(t.t0)))
}

// DispatchString tokenizes cmdline and dispatches the result.
func (d *Dispatcher) DispatchString(ctx context.Context, cmdline string) error {
	tokens, err := tokenize.Split(cmdline)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	return d.Dispatch(ctx, tokens)
}
