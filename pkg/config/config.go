package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	UpstreamBaseURL string
	Environment     string
	PageSize        int
	UpstreamTimeout time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:9000/api"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		PageSize:        getEnvAsInt("PAGE_SIZE", 20),
		UpstreamTimeout: time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
