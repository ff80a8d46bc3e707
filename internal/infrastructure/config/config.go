package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env       string
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Stripe    StripeConfig
	Storage   StorageConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	TxTimeout   time.Duration // limite de cada transação de negócio
	AutoMigrate bool
}

type JWTConfig struct {
	Secret       string
	Issuer       string
	AccessExpiry time.Duration
}

type StripeConfig struct {
	WebhookSecret string
	Tolerance     time.Duration
}

type StorageConfig struct {
	Bucket          string
	Region          string
	Endpoint        string // opcional (MinIO, LocalStack)
	AccessKeyID     string
	SecretAccessKey string
	PresignExpiry   time.Duration
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load carrega as configurações do arquivo .env (se existir) e do ambiente
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			TxTimeout:   v.GetDuration("DB_TX_TIMEOUT"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			Issuer:       v.GetString("JWT_ISSUER"),
			AccessExpiry: v.GetDuration("JWT_ACCESS_EXPIRY"),
		},
		Stripe: StripeConfig{
			WebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
			Tolerance:     v.GetDuration("STRIPE_WEBHOOK_TOLERANCE"),
		},
		Storage: StorageConfig{
			Bucket:          v.GetString("S3_BUCKET"),
			Region:          v.GetString("S3_REGION"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
			PresignExpiry:   v.GetDuration("S3_PRESIGN_EXPIRY"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_TX_TIMEOUT", "10s")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("JWT_ISSUER", "federa")
	v.SetDefault("JWT_ACCESS_EXPIRY", "12h")
	v.SetDefault("STRIPE_WEBHOOK_TOLERANCE", "5m")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_PRESIGN_EXPIRY", "15m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
}

// Validate garante que segredos obrigatórios estejam presentes
func (c *Config) Validate() error {
	var missing []string
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.Stripe.WebhookSecret == "" {
		missing = append(missing, "STRIPE_WEBHOOK_SECRET")
	}
	if c.Database.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Database.TxTimeout <= 0 {
		return errors.New("DB_TX_TIMEOUT must be positive")
	}
	return nil
}

// IsProduction indica ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
