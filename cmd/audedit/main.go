// SPDX-License-Identifier: EPL-2.0

// Command audedit applies one edit to an audio file.
//
//	audedit -i talk.mp3 --trim 5.0,10.0
//	audedit -i talk.mp3 --convert ogg -o talk.ogg
//	audedit -i talk.wav --volume=-3
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ik5/audedit/internal/command"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command.Version = version

	err := command.Run(ctx, os.Args, command.Streams{Out: os.Stdout, Err: os.Stderr})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)

		stop()
		os.Exit(1)
	}
}
