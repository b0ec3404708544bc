package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DBDriver selects the storage engine: "sqlite" (default) or "postgres".
	DBDriver string

	// SQLite
	DBPath string

	// Postgres
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
}

// Load reads configuration from the environment, with .env as a fallback
// for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:       GetEnv("PORT", "8080"),
		DBDriver:   GetEnv("DB_DRIVER", "sqlite"),
		DBPath:     GetEnv("DB_PATH", "zetanom.db"),
		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "password"),
		DBName:     GetEnv("DB_NAME", "zetanom"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
