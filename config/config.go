package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerAddr      string
	MysqlDSN        string
	JWTSecret       string
	SessionTTLHours int
}

var Cfg *Config

func Load() {
	Cfg = &Config{
		ServerAddr:      ":" + getEnv("PORT", "8080"),
		MysqlDSN:        getEnv("MYSQL_DSN", "root:root@tcp(localhost:3306)/bookface?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:       getEnv("JWT_SECRET", "bookface-secret-key-change-in-production"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
