package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/3-lines-studio/landgen/internal/adapters/cli"
	"github.com/3-lines-studio/landgen/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, commands.ErrFailed) {
			cli.NewOutput().PrintError("%v", err)
		}
		stop()
		os.Exit(1)
	}
}
