package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/techify/inventora/internal/messaging"
	"github.com/techify/inventora/internal/notifier"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	kafkaBrokers := os.Getenv("KAFKA_BROKERS")
	if kafkaBrokers == "" {
		logger.Error("KAFKA_BROKERS environment variable is required")
		os.Exit(1)
	}
	brokers := strings.Split(kafkaBrokers, ",")

	handler := notifier.NewHandler(notifier.NewLogEmailer(logger), logger)

	subscriptions := []struct {
		topic  string
		handle func(ctx context.Context, payload []byte) error
	}{
		{messaging.TopicOrderCreated, handler.HandleOrderCreated},
		{messaging.TopicInvoiceCreated, handler.HandleInvoiceCreated},
		{messaging.TopicTransactionRecorded, handler.HandleTransactionRecorded},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	logger.Info("starting notification worker", "brokers", brokers)

	errc := make(chan error, len(subscriptions))
	for _, sub := range subscriptions {
		consumer := messaging.NewConsumer(brokers, sub.topic, "notification-worker")
		defer func() { _ = consumer.Close() }()

		go func(handle func(context.Context, []byte) error) {
			errc <- consumer.Consume(ctx, handle)
		}(sub.handle)
	}

	if err := <-errc; err != nil {
		if ctx.Err() == context.Canceled {
			logger.Info("consumer stopped")
			return
		}
		logger.Error("consumer error", "error", err)
		os.Exit(1)
	}
}
