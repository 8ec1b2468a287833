// Package config centralises configuration parsing for the workout service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values for the workout service.
type Config struct {
	HTTPAddress    string
	AWSRegion      string
	DynamoTable    string
	DynamoEndpoint string // Non-empty overrides the SDK endpoint, used for DynamoDB Local.
	UseMemoryStore bool   // Run against the in-memory repository instead of DynamoDB.
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	CORSOrigin     string
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:    getEnv("HTTP_ADDRESS", ":8080"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		DynamoTable:    getEnv("DYNAMO_TABLE", "workouts"),
		DynamoEndpoint: getEnv("DYNAMO_ENDPOINT", ""),
		UseMemoryStore: getBoolEnv("USE_MEMORY_STORE", false),
		ReadTimeout:    getDurationEnv("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:   getDurationEnv("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:    getDurationEnv("HTTP_IDLE_TIMEOUT", 60*time.Second),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
