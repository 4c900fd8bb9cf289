// Command algonotes prints the Big O reference tables, measures the growth
// of the algorithms in this module, and checks the markdown notes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "algonotes:", err)
		stop()
		os.Exit(1)
	}
}
