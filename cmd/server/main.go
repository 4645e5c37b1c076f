package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/goblog/internal/server"
)

func main() {
	// A local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	ctx := context.Background()

	app, err := server.NewApp(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
