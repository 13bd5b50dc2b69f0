package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/clientdesk/internal/server"
	"github.com/dmitrijs2005/clientdesk/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
