// SPDX-License-Identifier: MIT

// Command flowmap compresses location observations into stay sessions and
// counts the flows between them.
//
//	flowmap compress observations.csv      > sessions.csv
//	flowmap flows sessions.csv             > flows.csv
//	flowmap run --gap 900 observations.csv > flows.csv
//	flowmap merge a.csv b.csv              > total.csv
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
