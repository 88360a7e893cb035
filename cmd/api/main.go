package main

import (
	"context"
	"fmt"

	"relay-srv/config"
	configKafka "relay-srv/config/kafka"
	configMinio "relay-srv/config/minio"
	configPostgre "relay-srv/config/postgre"
	"relay-srv/internal/httpserver"
	pkgKafka "relay-srv/pkg/kafka"
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Relay API Service...")

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

	// Kafka producer (optional - redrives publish results when available)
	var kafkaProducer pkgKafka.IProducer
	if producer, err := configKafka.ConnectProducer(cfg.Kafka); err != nil {
		logger.Warnf(ctx, "Kafka producer unavailable (redrive results will not be published): %v", err)
	} else {
		kafkaProducer = producer
		defer configKafka.DisconnectProducer()
		logger.Info(ctx, "Kafka producer initialized")
	}

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:        logger,
		Host:          cfg.HTTPServer.Host,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		Config:        cfg,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server error: %v", err)
		return
	}
}
