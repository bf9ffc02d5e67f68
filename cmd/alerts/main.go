package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tair/laminate-stock/kafka"
	"github.com/tair/laminate-stock/pkg/logger"
	"github.com/tair/laminate-stock/pkg/tracing"
)

// Alerts worker: consumes stock events and logs low stock warnings so
// operators can reorder before a laminate runs out.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "laminate-stock-alerts")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting alerts worker")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "laminate-stock-alerts")
	topics := []string{kafka.TopicStockRecalculated, kafka.TopicTransactionRecorded}

	consumer, err := kafka.NewConsumer(brokers, groupID, topics)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeStockRecalculated, handleStockRecalculated)
	consumer.RegisterHandler(kafka.EventTypeTransactionRecorded, handleTransactionRecorded)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Consumer stopped with error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down alerts worker...")
}

func handleStockRecalculated(ctx context.Context, payload []byte) error {
	event, err := kafka.DecodeStockRecalculated(payload)
	if err != nil {
		return err
	}

	log := logger.WithContext(ctx)
	if event.CurrentStock <= 0 {
		log.Error().
			Uint("laminate_id", event.LaminateID).
			Str("brand", event.Brand).
			Str("catalog_number", event.Catalog).
			Msg("Laminate out of stock")
		return nil
	}
	if event.LowStock {
		log.Warn().
			Uint("laminate_id", event.LaminateID).
			Str("brand", event.Brand).
			Str("catalog_number", event.Catalog).
			Int("current_stock", event.CurrentStock).
			Int("threshold", event.Threshold).
			Msg("Laminate stock below threshold")
		return nil
	}

	log.Debug().
		Uint("laminate_id", event.LaminateID).
		Int("current_stock", event.CurrentStock).
		Msg("Stock recalculated")
	return nil
}

func handleTransactionRecorded(ctx context.Context, payload []byte) error {
	event, err := kafka.DecodeTransactionRecorded(payload)
	if err != nil {
		return err
	}

	logger.WithContext(ctx).Info().
		Uint("transaction_id", event.TransactionID).
		Str("kind", event.Kind).
		Uint("laminate_id", event.LaminateID).
		Int("quantity", event.Quantity).
		Str("batch_ref", event.BatchRef).
		Msg("Transaction recorded")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
