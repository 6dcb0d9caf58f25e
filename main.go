package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bendazz/vector-practice/app"
	"github.com/bendazz/vector-practice/config"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	a, err := app.New(cfg)
	if err != nil {
		slog.Error("error creating app", "err", err)
		os.Exit(1)
	}
	if err := a.Run(); err != nil {
		slog.Error("error running app", "err", err)
		os.Exit(1)
	}
}
