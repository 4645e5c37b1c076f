package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/goblog/internal/client/cli"
	"github.com/dmitrijs2005/goblog/internal/client/config"
)

func main() {
	_ = godotenv.Load()

	app := cli.NewApp(config.Load())

	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}
