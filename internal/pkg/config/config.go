package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Stripe    StripeConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port       string `envconfig:"PORT" required:"true"`
	BackendURL string `envconfig:"BACKEND_URL" default:"http://localhost:8080"`
}

type MongoConfig struct {
	URI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database string `envconfig:"MONGO_DATABASE" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

type StorageConfig struct {
	// Provider selects the file storage backend: "local" or "gcs".
	Provider        string        `envconfig:"FILE_STORAGE_PROVIDER" default:"local"`
	LocalRoot       string        `envconfig:"FILE_STORAGE_PATH" default:"./file_storage"`
	GCSBucket       string        `envconfig:"GCS_BUCKET"`
	GCSCredentials  string        `envconfig:"GCS_CREDENTIALS_FILE"`
	SignedURLExpiry time.Duration `envconfig:"FILE_SIGNED_URL_EXPIRY" default:"4h"`
}

type StripeConfig struct {
	SecretKey string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	BaseURL   string `envconfig:"STRIPE_BASE_URL" default:"https://api.stripe.com"`
	Currency  string `envconfig:"STRIPE_CURRENCY" default:"brl"`
}

type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"500"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:       "8889", // Test port
			BackendURL: "http://localhost:8889",
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "pousada_test",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Stripe: StripeConfig{
			SecretKey: "sk_test_dummy",
			BaseURL:   "https://api.stripe.com",
			Currency:  "brl",
		},
	}
}
