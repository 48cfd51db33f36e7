package configs

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

func loadEnv() {
	envOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, reading configuration from environment")
		}
	})
}

func getEnv(key, fallback string) string {
	loadEnv()
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func EnvMongoURI() string {
	return getEnv("MONGOURI", "mongodb://localhost:27017")
}

func EnvDBName() string {
	return getEnv("DB_NAME", "snackshub")
}

func EnvPort() string {
	return getEnv("PORT", "5000")
}

func EnvJWTSecret() string {
	return getEnv("JWT_SECRET", "")
}

func EnvRazorpayKeyId() string {
	return getEnv("RAZORPAY_KEY_ID", "")
}

func EnvRazorpayKeySecret() string {
	return getEnv("RAZORPAY_KEY_SECRET", "")
}
