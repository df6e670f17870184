package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ibexa/solr-search-engine/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Commands report their own errors through the output formatter.
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
