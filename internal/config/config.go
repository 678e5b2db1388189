package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`

	Jobs struct {
		RequireApproval bool `yaml:"require_approval"` // postings hidden until an admin approves
		DefaultLimit    int  `yaml:"default_limit"`
		MaxLimit        int  `yaml:"max_limit"`
	} `yaml:"jobs"`

	RateLimit struct {
		RedisAddr     string `yaml:"redis_addr"` // empty disables the limiter
		Requests      int64  `yaml:"requests"`
		WindowSeconds int    `yaml:"window_seconds"`
	} `yaml:"rate_limit"`
}

var AppConfig *Config

// LoadConfig читает конфигурацию. Если задан DATABASE_URL, всё берется из
// переменных окружения (режим контейнера/тестов), иначе из YAML файла.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load is LoadConfig without the fatal exit.
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		if err := loadFromEnv(&cfg, dbURL); err != nil {
			return nil, err
		}
	} else {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		if err := loadFromFile(&cfg, configPath); err != nil {
			return nil, err
		}
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func loadFromEnv(cfg *Config, dbURL string) error {
	cfg.Database.DSN = dbURL
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.RateLimit.RedisAddr = os.Getenv("RATE_LIMIT_REDIS_ADDR")

	var err error
	if cfg.Server.Port, err = intEnv("SERVER_PORT"); err != nil {
		return err
	}
	if cfg.Jobs.DefaultLimit, err = intEnv("JOBS_DEFAULT_LIMIT"); err != nil {
		return err
	}
	if cfg.Jobs.MaxLimit, err = intEnv("JOBS_MAX_LIMIT"); err != nil {
		return err
	}
	if v := os.Getenv("JOBS_REQUIRE_APPROVAL"); v != "" {
		if cfg.Jobs.RequireApproval, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("JOBS_REQUIRE_APPROVAL: %w", err)
		}
	}
	return nil
}

func intEnv(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "production"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Jobs.DefaultLimit == 0 {
		cfg.Jobs.DefaultLimit = 20
	}
	if cfg.Jobs.MaxLimit == 0 {
		cfg.Jobs.MaxLimit = 100
	}
	if cfg.RateLimit.Requests == 0 {
		cfg.RateLimit.Requests = 120
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
}

func validate(cfg *Config) error {
	if cfg.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if cfg.Jobs.DefaultLimit > cfg.Jobs.MaxLimit {
		return fmt.Errorf("jobs.default_limit (%d) exceeds jobs.max_limit (%d)", cfg.Jobs.DefaultLimit, cfg.Jobs.MaxLimit)
	}
	return nil
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
