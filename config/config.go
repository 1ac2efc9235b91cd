package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// defaultJWTSecret hanya untuk development, ditolak saat APP_ENV=production.
const defaultJWTSecret = "siparhanud-secret-key-change-in-production"

// Config dibangun sekali di main lalu diteruskan ke semua komponen.
type Config struct {
	Env         string `yaml:"env"`
	HTTPAddr    string `yaml:"http_addr"`
	APIPrefix   string `yaml:"api_prefix"`
	CORSOrigins string `yaml:"cors_origins"`
	LogLevel    string `yaml:"log_level"`

	DBDriver string `yaml:"db_driver"`
	DBDSN    string `yaml:"db_dsn"`

	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`

	StorageDriver string `yaml:"storage_driver"`
	UploadDir     string `yaml:"upload_dir"`
	MaxUploadMB   int    `yaml:"max_upload_mb"`

	S3Bucket    string `yaml:"s3_bucket"`
	S3Region    string `yaml:"s3_region"`
	S3Endpoint  string `yaml:"s3_endpoint"`
	S3AccessKey string `yaml:"s3_access_key"`
	S3SecretKey string `yaml:"s3_secret_key"`

	AuditRetrySpec string `yaml:"audit_retry_spec"`
	AMQPURL        string `yaml:"amqp_url"`
	AMQPExchange   string `yaml:"amqp_exchange"`
	AMQPRoutingKey string `yaml:"amqp_routing_key"`
}

func Default() Config {
	return Config{
		Env:            "development",
		HTTPAddr:       ":8000",
		APIPrefix:      "/api",
		CORSOrigins:    "*",
		LogLevel:       "info",
		DBDriver:       "mysql",
		DBDSN:          "root:@tcp(127.0.0.1:3306)/siparhanud?charset=utf8mb4&parseTime=True&loc=UTC",
		JWTSecret:      defaultJWTSecret,
		TokenTTLHours:  24,
		StorageDriver:  "local",
		UploadDir:      "./uploads",
		MaxUploadMB:    10,
		S3Region:       "us-east-1",
		AuditRetrySpec: "@every 30s",
		AMQPExchange:   "siparhanud.audit",
		AMQPRoutingKey: "audit.log",
	}
}

// Load menyusun konfigurasi: default, lalu file YAML (opsional), lalu environment variable.
func Load(path string) (Config, error) {
	// .env boleh tidak ada, environment sistem tetap dipakai
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = GetEnv("CONFIG_FILE", "")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("baca config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Env = GetEnv("APP_ENV", c.Env)
	c.HTTPAddr = GetEnv("HTTP_ADDR", c.HTTPAddr)
	c.APIPrefix = GetEnv("API_PREFIX", c.APIPrefix)
	c.CORSOrigins = GetEnv("CORS_ORIGINS", c.CORSOrigins)
	c.LogLevel = GetEnv("LOG_LEVEL", c.LogLevel)
	c.DBDriver = GetEnv("DB_DRIVER", c.DBDriver)
	c.DBDSN = GetEnv("DB_DSN", c.DBDSN)
	c.JWTSecret = GetEnv("JWT_SECRET", c.JWTSecret)
	c.TokenTTLHours = GetEnvAsInt("TOKEN_TTL_HOURS", c.TokenTTLHours)
	c.StorageDriver = GetEnv("STORAGE_DRIVER", c.StorageDriver)
	c.UploadDir = GetEnv("UPLOAD_DIR", c.UploadDir)
	c.MaxUploadMB = GetEnvAsInt("MAX_UPLOAD_MB", c.MaxUploadMB)
	c.S3Bucket = GetEnv("S3_BUCKET", c.S3Bucket)
	c.S3Region = GetEnv("S3_REGION", c.S3Region)
	c.S3Endpoint = GetEnv("S3_ENDPOINT", c.S3Endpoint)
	c.S3AccessKey = GetEnv("S3_ACCESS_KEY", c.S3AccessKey)
	c.S3SecretKey = GetEnv("S3_SECRET_KEY", c.S3SecretKey)
	c.AuditRetrySpec = GetEnv("AUDIT_RETRY_SPEC", c.AuditRetrySpec)
	c.AMQPURL = GetEnv("AMQP_URL", c.AMQPURL)
	c.AMQPExchange = GetEnv("AMQP_EXCHANGE", c.AMQPExchange)
	c.AMQPRoutingKey = GetEnv("AMQP_ROUTING_KEY", c.AMQPRoutingKey)
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER tidak dikenal: %q", c.DBDriver)
	}
	switch c.StorageDriver {
	case "local":
	case "s3":
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET wajib diisi untuk storage s3")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER tidak dikenal: %q", c.StorageDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET wajib diisi")
	}
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET default tidak boleh dipakai di production")
	}
	if c.TokenTTLHours <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS harus lebih dari 0")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB harus lebih dari 0")
	}
	return nil
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c Config) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
