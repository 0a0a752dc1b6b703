package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Core API (основной бэкенд агентства с инвентарем)
	CoreAPIURL string
	// AssetOrigin origin для логотипов авиакомпаний. Нарочно отдельная
	// настройка: фронт исторически резолвил логотипы не от API base URL.
	AssetOrigin string
	// Redis для лимитера заявок на бронирование (необязателен)
	RedisAddr     string
	RedisPassword string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		Port:          getenvOrDefault("PORT", "8080"),
		CoreAPIURL:    getenvOrDefault("CORE_API_URL", "https://api.saer.pk/api"),
		AssetOrigin:   getenvOrDefault("ASSET_ORIGIN", "https://api.saer.pk"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
