package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"smartgrocery/internal/app"
	"smartgrocery/pkg/banner"
	"smartgrocery/pkg/config"
	"smartgrocery/pkg/logger"
	"smartgrocery/pkg/shutdown"
)

var version = "dev"

func main() {
	// .env is optional; real env vars win over its contents.
	_ = godotenv.Load()

	addr, dbPath, cfgPath, setFlags := config.ParseCommandFlags()
	cfgPath = config.ResolveConfigPath(cfgPath, setFlags["config"])
	eff := config.Resolve(addr, dbPath, setFlags, cfgPath)

	logger.Init(eff.Config.Logging.Level)
	defer logger.Sync()

	banner.Print(eff, version)

	ctx, cancel := shutdown.SetupSignalHandler(context.Background())
	defer cancel()

	if err := app.Run(ctx, eff); err != nil {
		logger.Error("server_failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server_stopped")
}
