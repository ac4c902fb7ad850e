package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT    string
	DB_URL  string
	APP_ENV string

	CORS_ORIGINS []string

	RATE_LIMIT_MAX            int
	RATE_LIMIT_WINDOW_MINUTES int
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "3000")
	DB_URL = mustEnv("DB_URL")
	APP_ENV = getEnv("APP_ENV", "development")

	CORS_ORIGINS = splitOrigins(getEnv("CORS_ORIGIN", "http://localhost:3000,http://localhost:5173"))

	RATE_LIMIT_MAX = getEnvInt("RATE_LIMIT_MAX", 100)
	RATE_LIMIT_WINDOW_MINUTES = getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}
