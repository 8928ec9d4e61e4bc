package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Admin server settings
	AdminAddr string
	PageSize  int

	// Data store settings
	StoreBaseURL string
	StoreAddr    string
	DatabaseURL  string
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AdminAddr:    getEnv("ADMIN_ADDR", ":8080"),
		PageSize:     getEnvInt("PAGE_SIZE", 5),
		StoreBaseURL: getEnv("STORE_BASE_URL", "http://localhost:3001"),
		StoreAddr:    getEnv("STORE_ADDR", ":3001"),
		DatabaseURL:  getEnv("DATABASE_URL", "store.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
