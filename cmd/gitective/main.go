package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog"
)

func main() {
	log := clog.New(slog.Default().Handler())
	ctx := clog.WithLogger(context.Background(), log)
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
