package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the full gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads gateway configuration from environment
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"user": {
				Name:        "user",
				BaseURL:     getEnv("USER_SERVICE_URL", "http://localhost:8080"),
				Instances:   getEnvList("USER_SERVICE_INSTANCES", getEnv("USER_SERVICE_URL", "http://localhost:8080")),
				Timeout:     10 * time.Second,
				HealthCheck: "/health",
			},
			"housing": {
				Name:        "housing",
				BaseURL:     getEnv("HOUSING_SERVICE_URL", "http://localhost:8081"),
				Instances:   getEnvList("HOUSING_SERVICE_INSTANCES", getEnv("HOUSING_SERVICE_URL", "http://localhost:8081")),
				Timeout:     15 * time.Second,
				HealthCheck: "/health",
			},
			"stock": {
				Name:        "stock",
				BaseURL:     getEnv("STOCK_SERVICE_URL", "http://localhost:8082"),
				Instances:   getEnvList("STOCK_SERVICE_INSTANCES", getEnv("STOCK_SERVICE_URL", "http://localhost:8082")),
				Timeout:     10 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

// GetService returns the configuration for a named service
func (c *GatewayConfig) GetService(name string) (ServiceConfig, bool) {
	svc, ok := c.Services[name]
	return svc, ok
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	value := getEnv(key, defaultValue)
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
