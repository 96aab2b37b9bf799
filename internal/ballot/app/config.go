package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/jwtx"
)

type Config struct {
	Issuer         string        `validate:"required"`                         // Issuer claim for tokens (default: ballotbox)
	TokenAlgorithm string        `validate:"oneof=HS256 EdDSA"`                // Token signing algorithm (default: HS256)
	TokenSecret    string        `validate:"omitempty,min=32"`                 // HS256 shared secret. Generated per process in dev when unset
	SigningKeyFile string        `validate:"required_if=TokenAlgorithm EdDSA"` // EdDSA private key (PEM), created on first start (default: ./signing.pem)
	SessionTTL     time.Duration `validate:"gt=0s"`                            // Session token lifetime (default: 8h)
	ResetTTL       time.Duration `validate:"gt=0s"`                            // Reset token lifetime (default: 1h)
	DatabaseDriver string `validate:"oneof=sqlite postgres"`               // Store backend (default: sqlite)
	DatabaseFile   string `validate:"required_if=DatabaseDriver sqlite"`   // SQLite file (default: ./ballot.db)
	DatabaseURL    string `validate:"required_if=DatabaseDriver postgres"` // Postgres connection URL
	PepperFile     string `validate:"required"`                            // Password hashing pepper (default: ./pepper)

	AllowAdminSignup bool // Let anyone register as admin (default: false)

	Env                  string        `validate:"oneof=dev staging prod test"` // Environment (default: dev)
	LogLevel             string        `validate:"oneof=debug info warn error"` // Log level (default: info)
	LogFormat            string        `validate:"oneof=json text"`             // Log format (default: json)
	Port                 int           `validate:"min=1,max=65535"`             // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration `validate:"gt=0s"`                       // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration `validate:"gt=0s"`                       // Expired reset token sweep (default: 1h)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads the environment after loading an optional .env file, then
// applies RATELIMIT_* overrides to the rate limit profiles.
func LoadConfig() Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := Config{
		Issuer:         getEnvOrDefault("BALLOT_ISSUER", "ballotbox"),
		TokenAlgorithm: getEnvOrDefault("BALLOT_TOKEN_ALGORITHM", "HS256"),
		TokenSecret:    os.Getenv("BALLOT_TOKEN_SECRET"),
		SigningKeyFile: getEnvOrDefault("BALLOT_SIGNING_KEY_FILE", "signing.pem"),
		SessionTTL:     getEnvDurationOrDefault("BALLOT_SESSION_TTL", jwtx.DefaultSessionTTL),
		ResetTTL:       getEnvDurationOrDefault("BALLOT_RESET_TTL", jwtx.DefaultResetTTL),

		DatabaseDriver: getEnvOrDefault("BALLOT_DATABASE_DRIVER", "sqlite"),
		DatabaseFile:   getEnvOrDefault("BALLOT_DATABASE_FILE", "ballot.db"),
		DatabaseURL:    os.Getenv("BALLOT_DATABASE_URL"),
		PepperFile:     getEnvOrDefault("BALLOT_PEPPER_FILE", "pepper"),

		AllowAdminSignup: getEnvBoolOrDefault("BALLOT_ALLOW_ADMIN_SIGNUP", false),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	httpx.ApplyRateLimitEnv()

	return cfg
}

// Validate checks field ranges and the rules that span fields.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.TokenAlgorithm == "HS256" && c.TokenSecret == "" && c.Env != "dev" && c.Env != "test" {
		return errors.New("invalid config: BALLOT_TOKEN_SECRET is required outside dev")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
