package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"extensible-calendar/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     "debug",
		Encoding: "console",
	})

	if err := newRootCmd(logger).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
