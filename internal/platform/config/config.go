package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	JWTSecretKey             string
	JWTAlgorithm             string
	AccessTokenExpireMinutes int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "madr"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	algorithm := strings.TrimSpace(os.Getenv("JWT_ALGORITHM"))
	if algorithm == "" {
		algorithm = "HS256"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		JWTSecretKey:             os.Getenv("JWT_SECRET_KEY"),
		JWTAlgorithm:             algorithm,
		AccessTokenExpireMinutes: envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
