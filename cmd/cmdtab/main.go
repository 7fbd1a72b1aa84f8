// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"os"

	"github.com/bassosimone/vclip"
)

func main() {
	vclip.Main(context.Background(), vclip.CommandFunc(cmdtabMain), os.Args[1:])
}
