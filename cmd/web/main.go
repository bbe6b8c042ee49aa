package main

import (
	"flag"
	"log"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/lukpoex/next-commerce/internal/config"
	"github.com/lukpoex/next-commerce/internal/logging"
	"github.com/lukpoex/next-commerce/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file (yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(&cfg.Logger)
	defer logger.Sync()

	app := iris.New()
	server.RegisterRoutes(app, cfg, logger)

	addr := cfg.Server.Addr()
	logger.Info("storefront server listening", zap.String("addr", addr))
	if err := app.Run(iris.Addr(addr)); err != nil {
		logger.Fatal("failed to run storefront server", zap.Error(err))
	}
}
