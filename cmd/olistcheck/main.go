package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Missing files were already explained by the report; an interrupted
		// prompt needs no message either.
		if !errors.Is(err, context.Canceled) && !errors.Is(err, errMissingFiles) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
