package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"recipe-backend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "recipectl:", err)
		stop()
		os.Exit(1)
	}
}
