package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/booking-page/backend/internal/calendar"
	"github.com/booking-page/backend/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"
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
		logger.Error("cannot load config", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * mail client
	 **********************************************/
	client, err := mail.NewClient(cfg.Calendar.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Calendar.SMTP.Port),
		mail.WithUsername(cfg.Calendar.SMTP.Username),
		mail.WithPassword(cfg.Calendar.SMTP.Password),
	)
	if err != nil {
		logger.Error("cannot create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// check the smtp server is reachable before consuming anything
	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Calendar.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(dialCtx); err != nil {
		logger.Error("cannot connect to mail server", slog.String("error", err.Error()))
		return
	}

	worker := calendar.NewWorker(client, cfg.Calendar.SMTP.Username, cfg.Calendar.ProductID)

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("cannot connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("cannot open channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := calendar.DeclareQueue(ch, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Error("cannot declare queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // let rabbitmq name the consumer
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("cannot consume queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Error("delivery channel closed")
					return
				}

				switch worker.Handle(msg.Body) {
				case calendar.Ack:
					_ = msg.Ack(false)
				case calendar.Reject:
					_ = msg.Nack(false, false)
				case calendar.Requeue:
					_ = msg.Nack(false, true)
				}
			}
		}
	}()

	logger.Info("waiting for calendar events (CTRL+C to quit)")
	<-sigChan

	slog.Info("shutting down calendar worker")
	cancel()
	wg.Wait()
	slog.Info("calendar worker stopped")
}
