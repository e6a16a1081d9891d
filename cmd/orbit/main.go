package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nicdgonzalez/orbit/internal/cli"
	"github.com/nicdgonzalez/orbit/internal/ui"
)

// Version information set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		ui.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
