package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"relay-srv/config"
	pkgKafka "relay-srv/pkg/kafka"
	"relay-srv/pkg/log"
	"relay-srv/pkg/minio"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Infrastructure clients
	postgresDB  *sql.DB
	minioClient minio.MinIO

	// Kafka producer for result publication (optional)
	kafkaProducer pkgKafka.IProducer

	config *config.Config
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Infrastructure clients
	PostgresDB  *sql.DB
	MinIOClient minio.MinIO

	// Kafka producer for result publication (optional)
	KafkaProducer pkgKafka.IProducer

	Config *config.Config
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		minioClient: cfg.MinIOClient,

		kafkaProducer: cfg.KafkaProducer,

		config: cfg.Config,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.minioClient == nil {
		return errors.New("minio client is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	return nil
}
