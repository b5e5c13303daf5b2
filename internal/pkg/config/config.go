package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
//
// All three services read the same Config. Only PORT is required at load time;
// settings that a given service cannot run without are checked by the Validate
// methods from that service's bootstrap.
// -----------------------------------------------------------------------------

type Config struct {
	Service  ServiceConfig
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Queue    QueueConfig
	LogShip  LogShipConfig
	LogStore LogStoreConfig
}

type ServiceConfig struct {
	// Empty means "use the binary's own name".
	Name string `envconfig:"SERVICE_NAME"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string        `envconfig:"DB_HOST" default:"localhost"`
	Port        string        `envconfig:"DB_PORT" default:"5432"`
	User        string        `envconfig:"DB_USER"`
	Password    string        `envconfig:"DB_PASSWORD"`
	DBName      string        `envconfig:"DB_NAME"`
	SSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	LockTimeout time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"3s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET"`
	Duration string `envconfig:"JWT_DURATION" default:"30m"`
}

type QueueConfig struct {
	Brokers        []string      `envconfig:"QUEUE_BROKERS" default:"localhost:9092"`
	Topic          string        `envconfig:"QUEUE_TOPIC" default:"logs_queue"`
	GroupID        string        `envconfig:"QUEUE_GROUP_ID" default:"logging_service"`
	DialTimeout    time.Duration `envconfig:"QUEUE_DIAL_TIMEOUT" default:"5s"`
	WriteTimeout   time.Duration `envconfig:"QUEUE_WRITE_TIMEOUT" default:"5s"`
	MaxRetries     int           `envconfig:"CONSUMER_MAX_RETRIES" default:"3"`
	RetryBackoff   time.Duration `envconfig:"CONSUMER_RETRY_BACKOFF" default:"200ms"`
	ReconnectDelay time.Duration `envconfig:"CONSUMER_RECONNECT_DELAY" default:"2s"`
	ReconnectMax   time.Duration `envconfig:"CONSUMER_RECONNECT_MAX" default:"30s"`
}

type LogShipConfig struct {
	Enabled    bool          `envconfig:"LOGSHIP_ENABLED" default:"true"`
	Buffer     int           `envconfig:"LOGSHIP_BUFFER" default:"1024"`
	BackoffMin time.Duration `envconfig:"LOGSHIP_BACKOFF_MIN" default:"100ms"`
	BackoffMax time.Duration `envconfig:"LOGSHIP_BACKOFF_MAX" default:"10s"`
}

type LogStoreConfig struct {
	Driver          string `envconfig:"LOG_STORE" default:"postgres"`
	MongoURI        string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase   string `envconfig:"MONGO_DATABASE" default:"hotel_logs"`
	MongoCollection string `envconfig:"MONGO_COLLECTION" default:"logs"`
}

const (
	LogStorePostgres = "postgres"
	LogStoreMongo    = "mongo"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DBConfig) Validate() error {
	if c.User == "" || c.DBName == "" {
		return fmt.Errorf("DB_USER and DB_NAME are required")
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("DB_LOCK_TIMEOUT must be positive, got %s", c.LockTimeout)
	}
	return nil
}

func (c *JWTConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := time.ParseDuration(c.Duration); err != nil {
		return fmt.Errorf("invalid JWT_DURATION %q: %w", c.Duration, err)
	}
	return nil
}

func (c *QueueConfig) Validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("QUEUE_BROKERS is required")
	}
	if c.Topic == "" {
		return fmt.Errorf("QUEUE_TOPIC is required")
	}
	return nil
}

func (c *LogStoreConfig) Validate() error {
	switch c.Driver {
	case LogStorePostgres, LogStoreMongo:
		return nil
	default:
		return fmt.Errorf("unsupported LOG_STORE %q", c.Driver)
	}
}

// ServiceName returns the configured name or fallback when SERVICE_NAME is unset.
func (c Config) ServiceName(fallback string) string {
	if c.Service.Name != "" {
		return c.Service.Name
	}
	return fallback
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Service: ServiceConfig{Name: "test_service"},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433", // Test DB port
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			TimeZone:    "UTC",
			MaxConns:    20,
			LockTimeout: 3 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "30m",
		},
		Queue: QueueConfig{
			Brokers:        []string{"localhost:9092"},
			Topic:          "logs_queue",
			GroupID:        "logging_service_test",
			DialTimeout:    time.Second,
			WriteTimeout:   time.Second,
			MaxRetries:     3,
			RetryBackoff:   10 * time.Millisecond,
			ReconnectDelay: 10 * time.Millisecond,
			ReconnectMax:   100 * time.Millisecond,
		},
		LogShip: LogShipConfig{
			Enabled:    false,
			Buffer:     64,
			BackoffMin: 10 * time.Millisecond,
			BackoffMax: 100 * time.Millisecond,
		},
		LogStore: LogStoreConfig{
			Driver: LogStorePostgres,
		},
	}
}
