package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/booking-page/backend/internal/calendar"
	"github.com/booking-page/backend/internal/config"
	"github.com/booking-page/backend/internal/handler"
	"github.com/booking-page/backend/internal/ratelimit"
	"github.com/booking-page/backend/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		return
	}

	/**********************************************
	 * database
	 **********************************************/
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

	// sql.Open does not connect, ping to fail fast
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("cannot connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("cannot connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("cannot open channel", "error", err)
		return
	}
	defer ch.Close()

	if _, err := calendar.DeclareQueue(ch, cfg.RabbitMQ.Queue); err != nil {
		logger.Error("cannot declare queue", "queue", cfg.RabbitMQ.Queue, "error", err)
		return
	}

	publisher := calendar.NewPublisher(ch, cfg.RabbitMQ.Queue, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)

	/**********************************************
	 * redis
	 **********************************************/
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:        fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password:    cfg.Redis.Password,
			DB:          0,
			DialTimeout: time.Duration(cfg.Redis.ConnectTimeout) * time.Second,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			// the limiter fails open, the api can still serve without redis
			logger.Warn("cannot reach redis", "error", err)
		}
		cancel()

		trustedProxies, err := ratelimit.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			logger.Error("cannot parse trusted proxies", "error", err)
			return
		}

		limiter = ratelimit.New(rdb, cfg.RateLimit.Limit, time.Duration(cfg.RateLimit.Window)*time.Second, cfg.RateLimit.Prefix, trustedProxies)
	}

	/**********************************************
	 * handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, publisher, limiter)
	if err != nil {
		logger.Error("cannot create handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * http server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
