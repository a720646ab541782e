package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authservice/internal/client/client"
	"github.com/dmitrijs2005/authservice/internal/client/config"
	"github.com/dmitrijs2005/authservice/internal/client/healthcheck"
	"github.com/dmitrijs2005/authservice/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig(config.EnvServiceHostName)
	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)

	c, err := client.NewAuthClient(cfg.Endpoint(), cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer c.Close()

	logger.Info(ctx, "health check started", "endpoint", cfg.Endpoint(), "interval", cfg.CheckInterval.String())
	healthcheck.NewProber(c, logger, cfg.CheckInterval).Run(ctx)
}
