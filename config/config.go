package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Conversion outcome journal
	Postgres PostgresConfig

	// MinIO - Source and destination object storage
	MinIO MinIOConfig

	// Kafka - Arrival notifications in, conversion results out
	Kafka KafkaConfig

	// Relay - Conversion pipeline behavior
	Relay RelayConfig

	// Internal service authentication
	InternalConfig InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers     []string
	Topic       string // arrival notification topic consumed by the relay
	ResultTopic string // per-batch result topic published by the relay
	GroupID     string
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// RelayConfig is the configuration for the conversion pipeline
type RelayConfig struct {
	SourceBucket      string
	DestinationBucket string
	SourceExtension   string // files with this extension get converted
	TargetExtension   string // extension of the converted output
	OperationTimeout  int    // per-record deadline, in seconds
	Concurrency       int    // records processed in parallel per batch
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// InternalConfig is the configuration for internal service authentication
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth (Authorization header). Optional; leave empty to disable.
	InternalKey string
	ServiceKeys map[string]string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("relay-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/relay/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL - Outcome journal
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// MinIO - Object storage
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")

	// Kafka - Notifications and results
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ResultTopic = viper.GetString("kafka.result_topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")

	// Relay pipeline
	cfg.Relay.SourceBucket = viper.GetString("relay.source_bucket")
	cfg.Relay.DestinationBucket = viper.GetString("relay.destination_bucket")
	cfg.Relay.SourceExtension = viper.GetString("relay.source_extension")
	cfg.Relay.TargetExtension = viper.GetString("relay.target_extension")
	cfg.Relay.OperationTimeout = viper.GetInt("relay.operation_timeout")
	cfg.Relay.Concurrency = viper.GetInt("relay.concurrency")

	// Internal auth key and service keys
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		serviceKeysRaw := viper.GetStringMapString("internal.service_keys")
		for service, key := range serviceKeysRaw {
			serviceKeys[service] = key
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL (schema: relay)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "relay")

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "relay.object.arrivals")
	viper.SetDefault("kafka.result_topic", "relay.conversion.results")
	viper.SetDefault("kafka.group_id", "relay-srv")

	// Relay pipeline
	viper.SetDefault("relay.source_bucket", "landing")
	viper.SetDefault("relay.destination_bucket", "curated")
	viper.SetDefault("relay.source_extension", ".csv")
	viper.SetDefault("relay.target_extension", ".parquet")
	viper.SetDefault("relay.operation_timeout", 60)
	viper.SetDefault("relay.concurrency", 4)
}

func validate(cfg *Config) error {
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.db_name is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	// Validate MinIO Configuration
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.AccessKey == "" {
		return fmt.Errorf("minio.access_key is required")
	}
	if cfg.MinIO.SecretKey == "" {
		return fmt.Errorf("minio.secret_key is required")
	}

	// Validate Kafka Configuration
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must have at least one broker")
	}
	if cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required")
	}
	if cfg.Kafka.GroupID == "" {
		return fmt.Errorf("kafka.group_id is required")
	}

	// Validate Relay Configuration
	if cfg.Relay.SourceBucket == "" {
		return fmt.Errorf("relay.source_bucket is required")
	}
	if cfg.Relay.DestinationBucket == "" {
		return fmt.Errorf("relay.destination_bucket is required")
	}
	if !strings.HasPrefix(cfg.Relay.SourceExtension, ".") {
		return fmt.Errorf("relay.source_extension must start with a dot")
	}
	if !strings.HasPrefix(cfg.Relay.TargetExtension, ".") {
		return fmt.Errorf("relay.target_extension must start with a dot")
	}
	if cfg.Relay.OperationTimeout <= 0 {
		return fmt.Errorf("relay.operation_timeout must be greater than 0")
	}
	if cfg.Relay.Concurrency <= 0 {
		return fmt.Errorf("relay.concurrency must be greater than 0")
	}

	return nil
}
