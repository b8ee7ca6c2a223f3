// SPDX-License-Identifier: MIT

// Command minmath evaluates YAML worksheets with the minmath library.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("minmath: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
