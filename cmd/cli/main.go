package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authservice/internal/client/cli"
	"github.com/dmitrijs2005/authservice/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig(config.EnvServiceIP)

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	os.Exit(app.Run(ctx, os.Args[1:]))
}
