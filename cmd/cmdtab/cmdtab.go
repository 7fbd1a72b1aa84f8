// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/bassosimone/cmdtab/internal/demo"
	"github.com/bassosimone/cmdtab/internal/dispatch"
	"github.com/bassosimone/cmdtab/internal/slogging"
	"github.com/bassosimone/runtimex"
	"github.com/bassosimone/vflag"
	"github.com/fatih/color"
)

// cmdtabMain is the main of the `cmdtab` command.
//
// It exits directly so that the status is exactly the one computed by run.
func cmdtabMain(ctx context.Context, args []string) error {
	if code := run(ctx, os.Stdout, os.Stderr, args); code != 0 {
		os.Exit(code)
	}
	return nil
}

// run dispatches according to args and returns the process exit code.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	var (
		commandFlag = ""
		demoFlag    = false
		formatFlag  = "text"
		verboseFlag = false
	)

	fset := vflag.NewFlagSet("cmdtab", vflag.ExitOnError)
	fset.StringVar(&commandFlag, 'c', "command", "Tokenize and dispatch `CMDLINE`.")
	fset.BoolVar(&demoFlag, 0, "demo", "Dispatch the built-in demo command line.")
	fset.StringVar(&formatFlag, 0, "format", "Use `FORMAT` for log output (text or json).")
	fset.AutoHelp('h', "help", "Print this help text and exit.")
	fset.BoolVar(&verboseFlag, 'v', "verbose", "Log each dispatch.")
	fset.DisablePermute = true
	fset.SetMinMaxPositionalArgs(0, math.MaxInt)
	runtimex.PanicOnError0(fset.Parse(args))

	slogging.Setup(stderr, formatFlag, verboseFlag)
	disp := dispatch.New(stdout, demo.Commands()...)

	positional := fset.Args()
	commandGiven := commandFlag != "" || hasCommandFlag(args[:len(args)-len(positional)])

	var err error
	switch {
	case demoFlag && commandGiven:
		err = errors.New("--demo and --command are mutually exclusive")
	case (demoFlag || commandGiven) && len(positional) > 0:
		err = fmt.Errorf("unexpected arguments after options: %s", strings.Join(positional, " "))
	case commandGiven && commandFlag == "":
		err = errors.New("empty command line")
	case demoFlag:
		err = disp.DispatchString(ctx, demo.CommandLine)
	case commandGiven:
		err = disp.DispatchString(ctx, commandFlag)
	case len(positional) > 0:
		err = disp.Dispatch(ctx, positional)
	default:
		usage(stderr, disp)
		return 1
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "cmdtab: %s\n", err)
		return 1
	}
	return 0
}

// hasCommandFlag reports whether the option arguments contain -c or --command.
func hasCommandFlag(options []string) bool {
	for _, opt := range options {
		switch {
		case opt == "--":
			return false
		case opt == "--command" || strings.HasPrefix(opt, "--command="):
			return true
		case strings.HasPrefix(opt, "--"):
			continue
		case strings.HasPrefix(opt, "-"):
			// -c may close a cluster of boolean short options, as in -vc.
			for _, ch := range opt[1:] {
				if ch == 'c' {
					return true
				}
				if ch != 'v' && ch != 'h' {
					break
				}
			}
		}
	}
	return false
}

// usage prints the synopsis and the command table.
func usage(w io.Writer, disp *dispatch.Dispatcher) {
	color.New(color.Bold).Fprintf(w, "usage: cmdtab [options] COMMAND [ARG...]\n")
	fmt.Fprintf(w, "       cmdtab [options] -c CMDLINE\n")
	fmt.Fprintf(w, "       cmdtab [options] --demo\n")
	fmt.Fprintf(w, "\ncommands:\n")
	for _, cmd := range disp.Commands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Help)
	}
	fmt.Fprintf(w, "\nTry `cmdtab --help` for the list of options.\n")
}
