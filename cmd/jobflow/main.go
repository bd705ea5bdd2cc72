// JobFlow - Job Application Tracking
//
// An offline-first CLI tool for tracking job applications, application
// streaks, achievements, and goal progress, with optional sync to a
// JobFlow account.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethantsaox/jobflow/internal/cli"
	"github.com/ethantsaox/jobflow/internal/log"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	defer log.Close()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
