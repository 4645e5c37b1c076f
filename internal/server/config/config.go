// Package config handles configuration for the server component. All
// database and secret settings come from the environment and all of them
// are required; a missing or unparsable variable aborts startup.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config holds runtime settings for the blog server.
//
// Fields:
//   - HTTPAddr / GRPCAddr: bind addresses for the two listeners.
//   - DB*: PostgreSQL connection settings and pool bounds.
//   - LogLevel: minimum level for the structured logger.
//   - JWTSecret: HMAC secret for signing bearer tokens (HS256).
type Config struct {
	HTTPAddr string
	GRPCAddr string

	DBName    string
	DBUser    string
	DBHost    string
	DBPort    int
	DBPass    string
	DBMaxConn int
	DBMinConn int

	LogLevel  string
	JWTSecret string
}

const (
	defaultHTTPAddr = ":3000"
	defaultGRPCAddr = ":50051"
)

// Load reads the configuration from the environment. It returns an error
// naming the first variable that is missing or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr: envOrDefault("HTTP_ADDR", defaultHTTPAddr),
		GRPCAddr: envOrDefault("GRPC_ADDR", defaultGRPCAddr),
	}

	var err error
	if cfg.DBName, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	if cfg.DBUser, err = requireEnv("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.DBHost, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.DBPort, err = requireEnvInt("DB_PORT"); err != nil {
		return nil, err
	}
	if cfg.DBPass, err = requireEnv("DB_PASS"); err != nil {
		return nil, err
	}
	if cfg.DBMaxConn, err = requireEnvInt("DB_MAX_CONN"); err != nil {
		return nil, err
	}
	if cfg.DBMinConn, err = requireEnvInt("DB_MIN_CONN"); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = requireEnv("LOG_LEVEL"); err != nil {
		return nil, err
	}
	if cfg.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseDSN renders the pgx connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass),
		c.DBHost, c.DBPort, c.DBName)
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func requireEnv(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", name)
	}
	return v, nil
}

func requireEnvInt(name string) (int, error) {
	v, err := requireEnv(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s: %w", name, err)
	}
	return n, nil
}
