package main

import (
	"context"
	"log"
	"time"

	"github.com/Adarshcode-012/ActivityHub/internal/app"
	"github.com/Adarshcode-012/ActivityHub/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func run() error {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Printf("app close: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	return application.Seed(ctx)
}
