package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/booking-page/backend/internal/config"
	"github.com/booking-page/backend/internal/repository"
	"github.com/booking-page/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var n int

	flag.IntVar(&n, "n", 5, "number of random bookings to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if n < 0 {
		logger.Error("number of bookings must not be negative", slog.Int("n", n))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("cannot create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("cannot connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	inserted, err := seed.SeedDemoHost(context.Background(), repo, cfg.Seed.Username, cfg.Seed.Password, n)
	if err != nil {
		logger.Error("cannot seed demo host", "error", err)
		os.Exit(1)
	}

	logger.Info("bookings seeded", slog.Int("count", inserted))
}
