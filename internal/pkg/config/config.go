package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	NotifyDriverLog   = "log"
	NotifyDriverKafka = "kafka"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Store    StoreConfig
	CORS     CORSConfig
	Log      LogConfig
	Engine   EngineConfig
	Notifier NotifierConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"fulfillment"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

// StoreConfig selects the persistence backend. "memory" keeps everything in
// process and is meant for local runs and tests.
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// Format forces "json" output outside release mode.
	Format         string `envconfig:"LOG_FORMAT" default:"text"`
}

type EngineConfig struct {
	// Consume stock for every order line inside the order transaction.
	ReserveStockOnOrder bool `envconfig:"ENGINE_RESERVE_STOCK_ON_ORDER" default:"false"`
	TxMaxRetries        int  `envconfig:"ENGINE_TX_MAX_RETRIES" default:"3"`
}

type NotifierConfig struct {
	Driver         string   `envconfig:"NOTIFY_DRIVER" default:"log"`
	AdminRecipient string   `envconfig:"NOTIFY_ADMIN_RECIPIENT" default:"inventory-admin@example.com"`
	KafkaBrokers   []string `envconfig:"NOTIFY_KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic     string   `envconfig:"NOTIFY_KAFKA_TOPIC" default:"notifications"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Validate reports every setting outside the values the wiring understands.
func (c Config) Validate() error {
	var problems []error
	if !slices.Contains([]string{StoreDriverPostgres, StoreDriverMemory}, c.Store.Driver) {
		problems = append(problems, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMemory, c.Store.Driver))
	}
	if !slices.Contains([]string{NotifyDriverLog, NotifyDriverKafka}, c.Notifier.Driver) {
		problems = append(problems, fmt.Errorf("NOTIFY_DRIVER must be %q or %q, got %q", NotifyDriverLog, NotifyDriverKafka, c.Notifier.Driver))
	}
	if c.Notifier.Driver == NotifyDriverKafka {
		if len(c.Notifier.KafkaBrokers) == 0 {
			problems = append(problems, errors.New("NOTIFY_KAFKA_BROKERS is required for the kafka notifier"))
		}
		if c.Notifier.KafkaTopic == "" {
			problems = append(problems, errors.New("NOTIFY_KAFKA_TOPIC is required for the kafka notifier"))
		}
	}
	if c.Notifier.AdminRecipient == "" {
		problems = append(problems, errors.New("NOTIFY_ADMIN_RECIPIENT must not be empty"))
	}
	if c.Engine.TxMaxRetries < 0 {
		problems = append(problems, fmt.Errorf("ENGINE_TX_MAX_RETRIES must not be negative, got %d", c.Engine.TxMaxRetries))
	}
	return errors.Join(problems...)
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
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
			Migrate:  false,
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
			Format:         "text",
		},
		Engine: EngineConfig{
			ReserveStockOnOrder: false,
			TxMaxRetries:        3,
		},
		Notifier: NotifierConfig{
			Driver:         NotifyDriverLog,
			AdminRecipient: "inventory-admin@example.com",
		},
	}
}
