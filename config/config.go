package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env          string
	Port         string
	DBURL        string
	LeaderboardN int
	BcryptCost   int
}

func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "3001"),
		DBURL:        mustGetEnv("DB_URL"),
		LeaderboardN: getEnvAsInt("LEADERBOARD_SIZE", 10),
		BcryptCost:   getEnvAsInt("BCRYPT_COST", 10),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
