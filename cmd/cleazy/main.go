package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/cleazy-chat/internal/buildinfo"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/cli"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/config"
	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()
	// logs go to stderr so they do not interleave with the transcript
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
	}
}
