// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/bassosimone/cmdtab/internal/dispatch"
)

func TestDispatchDemoCommands(t *testing.T) {
	tests := []struct {
		name    string
		cmdline string
		wantOut string
		wantErr error
	}{
		{
			name:    "demo command line",
			cmdline: CommandLine,
			wantOut: "The sum is 8.140000\n",
		},
		{
			name:    "add_all integers",
			cmdline: "add_all 1 2 3",
			wantOut: "The sum is 6.000000\n",
		},
		{
			name:    "add_all negative and exponent",
			cmdline: "add_all -1.5 2e1",
			wantOut: "The sum is 18.500000\n",
		},
		{
			name:    "add_all without args",
			cmdline: "add_all",
			wantOut: "nothing to add\n",
		},
		{
			name:    "add_all stops at invalid number",
			cmdline: "add_all 1 2x 3",
			wantOut: "invalid number: 2x\n",
		},
		{
			name:    "add_all rejects non numbers",
			cmdline: "add_all abc",
			wantOut: "invalid number: abc\n",
		},
		{
			name:    "add_all saturates out of range",
			cmdline: "add_all 1e400 1",
			wantOut: "The sum is +Inf\n",
		},
		{
			name:    "cmd2",
			cmdline: "cmd2",
			wantOut: "performing Second command\n",
		},
		{
			name:    "cmd2 ignores args",
			cmdline: "cmd2 a b",
			wantOut: "performing Second command\n",
		},
		{
			name:    "cmd3",
			cmdline: "cmd3",
			wantOut: "performing Third command\n",
		},
		{
			name:    "unknown command",
			cmdline: "cmd4 1",
			wantOut: "unknown command: cmd4\n",
			wantErr: dispatch.ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			disp := dispatch.New(&out, Commands()...)
			err := disp.DispatchString(context.Background(), tt.cmdline)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DispatchString(%q) error = %v, want %v", tt.cmdline, err, tt.wantErr)
			}
			if got := out.String(); got != tt.wantOut {
				t.Fatalf("DispatchString(%q) output = %q, want %q", tt.cmdline, got, tt.wantOut)
			}
		})
	}
}

func TestCommandsOrder(t *testing.T) {
	want := []string{"add_all", "cmd2", "cmd3"}
	cmds := Commands()
	if len(cmds) != len(want) {
		t.Fatalf("len(Commands()) = %d, want %d", len(cmds), len(want))
	}
	for idx, cmd := range cmds {
		if cmd.Name != want[idx] {
			t.Errorf("Commands()[%d].Name = %q, want %q", idx, cmd.Name, want[idx])
		}
		if cmd.Help == "" {
			t.Errorf("Commands()[%d].Help is empty", idx)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"3.14", 3.14, false},
		{"-2", -2, false},
		{"1e400", math.Inf(1), false},
		{"-1e400", math.Inf(-1), false},
		{"", 0, true},
		{"1.2.3", 0, true},
		{"12abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseNumber(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseNumber(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
