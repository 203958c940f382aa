package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/veranemoloko/cssgrab/internal/cli"
	"github.com/veranemoloko/cssgrab/internal/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, os.Args, os.Stdin, os.Stdout); err != nil {
		console.NewReporter(os.Stdout, console.ColorEnabled(os.Stdout, false)).Error(err)
	}
}
