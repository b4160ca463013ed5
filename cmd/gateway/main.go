package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/authgate/internal/gateway"
	"github.com/dmitrijs2005/authgate/internal/gateway/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := gateway.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
