package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "STADIUM"

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Log      LogConfig      `yaml:"log"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir" envconfig:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

// StorageConfig selects the backing store. The memory driver serves the
// seeded catalog and simulates network latency on every call.
type StorageConfig struct {
	Driver    string `yaml:"driver"`
	LatencyMS int    `yaml:"latency_ms" envconfig:"latency_ms"`
}

func (s StorageConfig) Latency() time.Duration {
	return time.Duration(s.LatencyMS) * time.Millisecond
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode" envconfig:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic" envconfig:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic" envconfig:"notifications_topic"`
	GroupID            string   `yaml:"group_id" envconfig:"group_id"`
}

type BookingConfig struct {
	ServiceFeeRate      float64 `yaml:"service_fee_rate" envconfig:"service_fee_rate"`
	LedgerDurationHours float64 `yaml:"ledger_duration_hours" envconfig:"ledger_duration_hours"`
	QuoteDurationHours  float64 `yaml:"quote_duration_hours" envconfig:"quote_duration_hours"`
	VenuesCacheTTL      int     `yaml:"venues_cache_ttl_seconds" envconfig:"venues_cache_ttl_seconds"`
}

type WorkerConfig struct {
	CompletionSweepMinutes int `yaml:"completion_sweep_minutes" envconfig:"completion_sweep_minutes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Only variables that are actually set override the file.
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.Booking.ServiceFeeRate == 0 {
		c.Booking.ServiceFeeRate = 0.10
	}
	if c.Booking.LedgerDurationHours == 0 {
		c.Booking.LedgerDurationHours = 2
	}
	if c.Booking.QuoteDurationHours == 0 {
		c.Booking.QuoteDurationHours = 1
	}
	if c.Booking.VenuesCacheTTL == 0 {
		c.Booking.VenuesCacheTTL = 60
	}
	if c.Worker.CompletionSweepMinutes == 0 {
		c.Worker.CompletionSweepMinutes = 15
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
