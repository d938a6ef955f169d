package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	DriverMongo    = "mongo"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
)

type Config struct {
	Port            string
	StorageDriver   string
	MongoURI        string
	DBName          string
	ItemsCollection string
	SQLDSN          string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// fileConfig mirrors Config for the YAML overlay. Durations are strings
// ("10s") since yaml.v3 has no native time.Duration decoding.
type fileConfig struct {
	Port            string `yaml:"port"`
	StorageDriver   string `yaml:"storage_driver"`
	MongoURI        string `yaml:"mongo_uri"`
	DBName          string `yaml:"db_name"`
	ItemsCollection string `yaml:"items_collection"`
	SQLDSN          string `yaml:"sql_dsn"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
}

// LoadConfig builds the config from defaults, an optional YAML file named
// by CONFIG_FILE, and environment variables. Environment always wins.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:            "8080",
		StorageDriver:   DriverMongo,
		MongoURI:        "mongodb://localhost:27017",
		DBName:          "inventory_db",
		ItemsCollection: "items",
		SQLDSN:          "file:inventory.db",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		fc.apply(cfg)
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.StorageDriver = getEnv("STORAGE_DRIVER", cfg.StorageDriver)
	cfg.MongoURI = getEnv("MONGO_URI", cfg.MongoURI)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.ItemsCollection = getEnv("COLLECTION_ITEMS", cfg.ItemsCollection)
	cfg.SQLDSN = getEnv("SQL_DSN", cfg.SQLDSN)
	cfg.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
	case DriverSQLite, DriverPostgres, DriverMySQL:
		if c.SQLDSN == "" {
			return fmt.Errorf("SQL_DSN is required")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.StorageDriver != "" {
		cfg.StorageDriver = fc.StorageDriver
	}
	if fc.MongoURI != "" {
		cfg.MongoURI = fc.MongoURI
	}
	if fc.DBName != "" {
		cfg.DBName = fc.DBName
	}
	if fc.ItemsCollection != "" {
		cfg.ItemsCollection = fc.ItemsCollection
	}
	if fc.SQLDSN != "" {
		cfg.SQLDSN = fc.SQLDSN
	}
	if d, err := time.ParseDuration(fc.ReadTimeout); err == nil && fc.ReadTimeout != "" {
		cfg.ReadTimeout = d
	}
	if d, err := time.ParseDuration(fc.WriteTimeout); err == nil && fc.WriteTimeout != "" {
		cfg.WriteTimeout = d
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Try parsing as duration string, e.g. "10s"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
