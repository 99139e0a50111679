package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	StoreBackend string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	DatabaseURL    string // PGSQL_URL
	MigrationsPath string

	DBMinPool                uint64
	DBMaxPool                uint64
	DBServerSelectionTimeout time.Duration
	DBSocketTimeout          time.Duration

	Port         string
	IsProduction bool
	LogLevel     string

	ListTimeout    time.Duration
	GratitudeLimit int

	CORSAllowedOrigins []string
	RateLimit          string
	JWTSecret          string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("STORE_BACKEND", BackendMongo)
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "diary")
	v.SetDefault("MONGODB_COLLECTION", "diaryentries")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DB_MIN_POOL", 5)
	v.SetDefault("DB_MAX_POOL", 10)
	v.SetDefault("DB_SERVER_SELECTION_TIMEOUT", "5s")
	v.SetDefault("DB_SOCKET_TIMEOUT", "45s")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LIST_TIMEOUT", "8s")
	v.SetDefault("GRATITUDE_LIMIT", 3)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("JWT_SECRET", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		StoreBackend:             strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		MongoURI:                 v.GetString("MONGODB_URI"),
		MongoDatabase:            v.GetString("MONGODB_DATABASE"),
		MongoCollection:          v.GetString("MONGODB_COLLECTION"),
		DatabaseURL:              v.GetString("PGSQL_URL"),
		MigrationsPath:           v.GetString("MIGRATIONS_PATH"),
		DBMinPool:                v.GetUint64("DB_MIN_POOL"),
		DBMaxPool:                v.GetUint64("DB_MAX_POOL"),
		DBServerSelectionTimeout: v.GetDuration("DB_SERVER_SELECTION_TIMEOUT"),
		DBSocketTimeout:          v.GetDuration("DB_SOCKET_TIMEOUT"),
		Port:                     v.GetString("PORT"),
		IsProduction:             v.GetBool("IS_PRODUCTION"),
		LogLevel:                 v.GetString("LOG_LEVEL"),
		ListTimeout:              v.GetDuration("LIST_TIMEOUT"),
		GratitudeLimit:           v.GetInt("GRATITUDE_LIMIT"),
		RateLimit:                v.GetString("RATE_LIMIT"),
		JWTSecret:                v.GetString("JWT_SECRET"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.GratitudeLimit < 0 {
		log.Printf("Warning: GRATITUDE_LIMIT (%d) is negative. Treating it as unlimited.\n", cfg.GratitudeLimit)
		cfg.GratitudeLimit = 0
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. API authentication is disabled.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports missing or inconsistent settings as apperrors.ErrConfiguration.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("%w: MONGODB_URI is required for the %s backend", apperrors.ErrConfiguration, BackendMongo)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: PGSQL_URL is required for the %s backend", apperrors.ErrConfiguration, BackendPostgres)
		}
	default:
		return fmt.Errorf("%w: unknown STORE_BACKEND %q", apperrors.ErrConfiguration, c.StoreBackend)
	}
	if c.DBMaxPool > 0 && c.DBMinPool > c.DBMaxPool {
		return fmt.Errorf("%w: DB_MIN_POOL (%d) exceeds DB_MAX_POOL (%d)", apperrors.ErrConfiguration, c.DBMinPool, c.DBMaxPool)
	}
	return nil
}
