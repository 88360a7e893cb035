package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"relay-srv/config"
	configKafka "relay-srv/config/kafka"
	configMinio "relay-srv/config/minio"
	configPostgre "relay-srv/config/postgre"
	"relay-srv/internal/consumer"
	"relay-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Relay Consumer Service...")

	// Kafka Producer (for publishing conversion results)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Info(ctx, "Kafka producer initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		KafkaConfig:   cfg.Kafka,
		RelayConfig:   cfg.Relay,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
