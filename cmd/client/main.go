package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"taskboard/internal/client/cli"
	"taskboard/internal/client/config"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read config: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
