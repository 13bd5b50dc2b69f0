package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/clientdesk/internal/buildinfo"
	"github.com/dmitrijs2005/clientdesk/internal/client/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(buildinfo.Version())
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
