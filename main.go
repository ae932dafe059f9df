package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/brickforge/cli"
	"github.com/spaghettifunk/brickforge/engine/core"
)

func main() {
	// cancel on sigterm so watch and batch can wind down
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := cli.Execute(ctx, os.Args[1:]); err != nil {
		stop()
		core.LogFatal("%s", err)
	}
}
