package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/duka-labs/inventory-catalog/internal/config"
	"github.com/duka-labs/inventory-catalog/internal/log"
	"github.com/duka-labs/inventory-catalog/internal/repository"
	"github.com/duka-labs/inventory-catalog/internal/seed"
	"github.com/duka-labs/inventory-catalog/internal/service"
	"github.com/duka-labs/inventory-catalog/internal/storage/db"
	"github.com/duka-labs/inventory-catalog/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running seed application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		Seed     config.Seed
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	productRepository := repository.NewProductRepository(dbClient)
	productService := service.NewProductService(dbClient, productRepository, v)

	logger.InfoContext(ctx, "seeding product catalog")

	if err := seed.Run(ctx, logger, productService, cfg.Seed.Count, cfg.Seed.Rand); err != nil {
		return fmt.Errorf("error seeding product catalog: %w", err)
	}

	return nil
}
