package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"autozar_backend/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql
		DSN    string `yaml:"url"`
		Name   string `yaml:"name"` // mongo database
	} `yaml:"database"`

	Storage struct {
		Type          string `yaml:"type"` // memory, badger, gorm, mongo
		Path          string `yaml:"path"` // badger directory
		GCIntervalMin int    `yaml:"gc_interval_minutes"`
	} `yaml:"storage"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Telemetry struct {
		TraceExporter string `yaml:"trace_exporter"` // otlp, stdout, none
		OTLPEndpoint  string `yaml:"otlp_endpoint"`
		OTLPInsecure  bool   `yaml:"otlp_insecure"`
	} `yaml:"telemetry"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	Workers struct {
		AuditIntervalMin int `yaml:"audit_interval_minutes"` // 0 disables
	} `yaml:"workers"`

	Engine struct {
		SimulatedLatencyMs int    `yaml:"simulated_latency_ms"`
		DefaultPageSize    int    `yaml:"default_page_size"`
		MaxPageSize        int    `yaml:"max_page_size"`
		PlaceholderImage   string `yaml:"placeholder_image"`
	} `yaml:"engine"`
}

const (
	StorageMemory = "memory"
	StorageBadger = "badger"
	StorageGorm   = "gorm"
	StorageMongo  = "mongo"
)

var AppConfig *Config

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Database.Driver = "postgres"
	cfg.Database.Name = "autozar"
	cfg.Storage.Type = StorageMemory
	cfg.Storage.Path = "./data/badger"
	cfg.JWT.TTL = 60
	cfg.Telemetry.TraceExporter = "none"
	cfg.RateLimit.RequestsPerSecond = 20
	cfg.RateLimit.Burst = 40
	cfg.Workers.AuditIntervalMin = 15
	cfg.Engine.DefaultPageSize = 12
	cfg.Engine.MaxPageSize = 100
	cfg.Engine.PlaceholderImage = "/static/placeholder.png"
	return &cfg
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("open config %s: %w", path, err)
	default:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory, StorageBadger:
	case StorageGorm, StorageMongo:
		if c.Database.DSN == "" {
			return fmt.Errorf("config: storage.type %s requires database.url", c.Storage.Type)
		}
	default:
		return fmt.Errorf("config: unknown storage.type %q", c.Storage.Type)
	}
	if c.Engine.DefaultPageSize <= 0 || c.Engine.MaxPageSize < c.Engine.DefaultPageSize {
		return fmt.Errorf("config: invalid page sizes default=%d max=%d",
			c.Engine.DefaultPageSize, c.Engine.MaxPageSize)
	}
	if c.Workers.AuditIntervalMin < 0 {
		return errors.New("config: workers.audit_interval_minutes must not be negative")
	}
	if c.Engine.SimulatedLatencyMs < 0 {
		return errors.New("config: engine.simulated_latency_ms must not be negative")
	}
	return nil
}

// LoadConfig loads CONFIG_PATH (default config/config.yaml) into AppConfig.
// A .env file in the working directory, when present, seeds the environment first.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load .env", "error", err)
	}
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	cfg, err := Load(path)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
