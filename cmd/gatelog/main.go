package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/entrelagos/gatelog/internal/buildinfo"
	"github.com/entrelagos/gatelog/internal/cli"
	"github.com/entrelagos/gatelog/internal/config"
	"github.com/entrelagos/gatelog/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
