package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	JWT      JWTConfig
	Groq     GroqConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_manager"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CacheConfig selects the snapshot cache backend
type CacheConfig struct {
	Driver     string        `envconfig:"CACHE_DRIVER" default:"memory"` // "memory" or "redis"
	DefaultTTL time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"300s"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" default:"your-secret-key-change-in-production"`
	Expiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

// GroqConfig holds summarization service configuration
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY" default:""`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
	UseMock bool   `envconfig:"GROQ_USE_MOCK" default:"false"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("CACHE_DRIVER must be \"memory\" or \"redis\", got %q", c.Cache.Driver)
	}
	if !c.Groq.UseMock && c.Groq.APIKey == "" && c.Server.Environment == "production" {
		return fmt.Errorf("GROQ_API_KEY is required in production unless GROQ_USE_MOCK is set")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
