package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPath = "config.yaml"

const (
	CatalogSourceSeed     = "seed"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Worker   WorkerConfig   `yaml:"worker"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers      []string `yaml:"brokers"`
	QueriesTopic string   `yaml:"queries_topic"`
	GroupID      string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.QueriesTopic != ""
}

type CatalogConfig struct {
	Source          string `yaml:"source"`
	File            string `yaml:"file"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

type WorkerConfig struct {
	ReportIntervalSeconds int `yaml:"report_interval_seconds"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns a configuration that serves the built-in catalog with no
// external services.
func Default() *Config {
	return &Config{
		HTTP:    HTTPConfig{Address: ":8080"},
		GRPC:    GRPCConfig{Address: ":9090"},
		Catalog: CatalogConfig{Source: CatalogSourceSeed, CacheTTLSeconds: 300},
		Worker:  WorkerConfig{ReportIntervalSeconds: 60},
		Log:     LogConfig{Level: "info"},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv reads the file named by CONFIG_PATH, or config.yaml. A missing
// config.yaml is not an error when CONFIG_PATH is unset: defaults are used.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadConfig(path)
	}

	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return LoadConfig(defaultPath)
}

func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceSeed, CatalogSourcePostgres:
	case CatalogSourceFile:
		if c.Catalog.File == "" {
			return fmt.Errorf("invalid config: catalog.file is required for source %q", CatalogSourceFile)
		}
	default:
		return fmt.Errorf("invalid config: unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Catalog.CacheTTLSeconds < 0 {
		return fmt.Errorf("invalid config: catalog.cache_ttl_seconds must not be negative")
	}
	return nil
}
