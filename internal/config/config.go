package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI               string
	ConnectTimeoutSec int
}

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver   string
	Name     string
	Mongo    MongoConfig
	Postgres DatabaseConfig
}

// MinIOConfig holds object storage settings for MinIO. An empty Endpoint disables
// application file attachments.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	LogLevel string
	Store    StoreConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	name := getEnv("DB_NAME", "")
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", DriverMongo),
			Name:   name,
			Mongo: MongoConfig{
				URI:               getEnv("ATLAS_URI", ""),
				ConnectTimeoutSec: getEnvInt("MONGO_CONNECT_TIMEOUT_SEC", 10),
			},
			Postgres: DatabaseConfig{
				Host:               getEnv("PG_HOST", ""),
				Port:               getEnv("PG_PORT", "5432"),
				User:               getEnv("PG_USER", ""),
				Password:           getEnv("PG_PASSWORD", ""),
				Name:               name,
				SSLMode:            getEnv("PG_SSLMODE", "disable"),
				MaxOpenConns:       getEnvInt("PG_MAX_OPEN_CONNS", 10),
				MaxIdleConns:       getEnvInt("PG_MAX_IDLE_CONNS", 5),
				ConnMaxLifetimeSec: getEnvInt("PG_CONN_MAX_LIFETIME_SEC", 300),
			},
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Validate reports settings that must abort startup.
func (c *AppConfig) Validate() error {
	if c.Store.Name == "" {
		return errors.New("DB_NAME is required")
	}
	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.Mongo.URI == "" {
			return errors.New("ATLAS_URI is required for the mongo store")
		}
	case DriverPostgres:
		if c.Store.Postgres.Host == "" || c.Store.Postgres.User == "" {
			return errors.New("PG_HOST and PG_USER are required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
