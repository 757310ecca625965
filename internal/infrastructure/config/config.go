package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort  int
	GRPCPort  int
	Auth      AuthConfig
	Telemetry TelemetryConfig
	LogLevel  string
	LogFormat string
}

// AuthConfig holds JWT validation parameters.
type AuthConfig struct {
	JWTSecret        string
	JWTPublicKeyFile string
	Issuer           string
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8090),
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", ""),
			JWTPublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Issuer:           getEnv("JWT_ISSUER", "cdbsim"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  "cdbsim",
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
