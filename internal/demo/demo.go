// SPDX-License-Identifier: AGPL-3.0-or-later

// Package demo contains the command table shipped with cmdtab.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bassosimone/cmdtab/internal/dispatch"
)

// CommandLine is the sample command line dispatched by `cmdtab --demo`.
const CommandLine = "add_all 3.14 2 3"

// Commands returns the demo command table.
func Commands() []dispatch.Command {
	return []dispatch.Command{
		{Name: "add_all", Handler: addAll, Help: "Print the sum of the given numbers."},
		{Name: "cmd2", Handler: secondCommand, Help: "Run the second command."},
		{Name: "cmd3", Handler: thirdCommand, Help: "Run the third command."},
	}
}

// addAll is the handler of `add_all`.
func addAll(ctx context.Context, stdout io.Writer, args []string) {
	if len(args) <= 0 {
		fmt.Fprintf(stdout, "nothing to add\n")
		return
	}
	var sum float64
	for _, arg := range args {
		value, err := parseNumber(arg)
		if err != nil {
			fmt.Fprintf(stdout, "invalid number: %s\n", arg)
			return
		}
		sum += value
	}
	fmt.Fprintf(stdout, "The sum is %f\n", sum)
}

// parseNumber parses arg like strtod, requiring it to be entirely consumed.
//
// Out-of-range values are accepted as +/-Inf.
func parseNumber(arg string) (float64, error) {
	value, err := strconv.ParseFloat(arg, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}
	return value, err
}

func secondCommand(ctx context.Context, stdout io.Writer, args []string) {
	fmt.Fprintf(stdout, "performing Second command\n")
}

func thirdCommand(ctx context.Context, stdout io.Writer, args []string) {
	fmt.Fprintf(stdout, "performing Third command\n")
}
