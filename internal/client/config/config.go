// Package config handles configuration for the client CLI. Both server
// addresses have local defaults so the CLI works against a dev server with
// no environment at all.
package config

import "os"

type Config struct {
	// HTTPAddr is a base URL, e.g. http://127.0.0.1:3000.
	HTTPAddr string
	// GRPCAddr is a host:port dial target.
	GRPCAddr string
}

const (
	defaultHTTPAddr = "http://127.0.0.1:3000"
	defaultGRPCAddr = "127.0.0.1:50051"
)

func Load() *Config {
	return &Config{
		HTTPAddr: envOrDefault("HTTP_SERVER_ADDR", defaultHTTPAddr),
		GRPCAddr: envOrDefault("GRPC_SERVER_ADDR", defaultGRPCAddr),
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
