package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibbank/cdbsim/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "GRPC_PORT",
		"JWT_SECRET", "JWT_PUBLIC_KEY_FILE", "JWT_ISSUER",
		"OTEL_EXPORTER_OTLP_ENDPOINT",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, 8090, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Empty(t, cfg.Auth.JWTPublicKeyFile)
	assert.Equal(t, "cdbsim", cfg.Auth.Issuer)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "cdbsim", cfg.Telemetry.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("GRPC_PORT", "9191")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_ISSUER", "platform-idp")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg := config.Load()

	assert.Equal(t, 8181, cfg.HTTPPort)
	assert.Equal(t, 9191, cfg.GRPCPort)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "platform-idp", cfg.Auth.Issuer)
	assert.Equal(t, "collector:4318", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadIgnoresMalformedPorts(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	t.Setenv("GRPC_PORT", "")

	cfg := config.Load()

	assert.Equal(t, 8090, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.GRPCPort)
}
