package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Internal    InternalConfig
	Admin       AdminBootstrapConfig
	Metrics     MetricsConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	// TrustProxyHeaders is set only when the service sits behind a proxy that rewrites X-Forwarded-For.
	TrustProxyHeaders bool
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// AuthConfig drives token issuance and login throttling.
type AuthConfig struct {
	JWTSecret        string
	RefreshSecret    string
	UserAccessTTL    time.Duration
	AdminAccessTTL   time.Duration
	RefreshTTL       time.Duration
	LoginMaxAttempts int
	LoginLockout     time.Duration
}

type InternalConfig struct {
	APIKey string
	APIURL string
}

type AdminBootstrapConfig struct {
	Username string
	Password string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := getString("JWT_SECRET", "")

	return &Config{
		Environment: getString("APP_ENV", "development"),
		LogLevel:    getString("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:              getString("PORT", "8000"),
			ReadTimeout:       getDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:      getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:       getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout:   getDuration("HTTP_SHUTDOWN_TIMEOUT", 15*time.Second),
			TrustProxyHeaders: getBool("TRUST_PROXY_HEADERS", false),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "aberno"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:        jwtSecret,
			RefreshSecret:    getString("JWT_REFRESH_SECRET", jwtSecret),
			UserAccessTTL:    getDuration("JWT_USER_ACCESS_TTL", 365*24*time.Hour),
			AdminAccessTTL:   getDuration("JWT_ADMIN_ACCESS_TTL", 30*24*time.Hour),
			RefreshTTL:       getDuration("JWT_REFRESH_TTL", 60*24*time.Hour),
			LoginMaxAttempts: getInt("LOGIN_MAX_ATTEMPTS", 10),
			LoginLockout:     getDuration("LOGIN_LOCKOUT", 15*time.Minute),
		},
		Internal: InternalConfig{
			APIKey: getString("INTERNAL_API_KEY", ""),
			APIURL: getString("INTERNAL_API_URL", "http://localhost:8000"),
		},
		Admin: AdminBootstrapConfig{
			Username: getString("ADMIN_USERNAME", ""),
			Password: getString("ADMIN_PASSWORD", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getBool("METRICS_ENABLED", true),
		},
	}
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.UserAccessTTL <= 0 || c.Auth.AdminAccessTTL <= 0 || c.Auth.RefreshTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	return nil
}

// GetDSN returns the MySQL DSN; parseTime is required for DATETIME scanning.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
