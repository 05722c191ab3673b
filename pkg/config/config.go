package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	// Server
	ServerPort string

	// Database
	DBDriver      string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SQLitePath    string
	DBAutoMigrate bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Admin
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	AdminSessionTTL   time.Duration
	AdminLoginURL     string
	CookieSecure      bool

	// Frontend
	FrontendURL        string
	FrontendURL2       string
	RevalidationURL    string
	RevalidationSecret string
	RateLimitPerMinute int
	CacheTTL           time.Duration

	// Uploads
	UploadDriver   string
	UploadDir      string
	UploadMaxBytes int64

	// AWS S3
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           string
	S3BucketName       string

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "portfolio"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		SQLitePath:    getEnv("SQLITE_PATH", "portfolio.db"),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         getEnv("JWT_SECRET", DefaultJWTSecret),
		AdminSessionTTL:   getEnvDuration("ADMIN_SESSION_TTL", 24*time.Hour),
		AdminLoginURL:     getEnv("ADMIN_LOGIN_URL", "/admin/login"),
		CookieSecure:      getEnvBool("COOKIE_SECURE", false),

		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		FrontendURL2:       getEnv("FRONTEND_URL2", ""),
		RevalidationURL:    getEnv("NEXT_REVALIDATION_URL", ""),
		RevalidationSecret: getEnv("REVALIDATION_SECRET", ""),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		CacheTTL:           getEnvDuration("CACHE_TTL", 5*time.Minute),

		UploadDriver:   strings.ToLower(getEnv("UPLOAD_DRIVER", "local")),
		UploadDir:      getEnv("UPLOAD_DIR", "public/uploads"),
		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 10<<20)),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "portfolio-assets"),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", ""),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),
	}

	if config.DBDriver != "postgres" && config.DBDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.DBDriver)
	}
	if config.UploadDriver != "local" && config.UploadDriver != "s3" {
		return nil, fmt.Errorf("unsupported UPLOAD_DRIVER %q", config.UploadDriver)
	}

	return config, nil
}

// PostgresDSN returns DATABASE_URL when set, otherwise a DSN assembled from the DB_* variables.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

// AllowedOrigins lists the configured frontend origins.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, 2)
	for _, o := range []string{c.FrontendURL, c.FrontendURL2} {
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
