package initializers

import "os"

// Config carries all process-scoped settings. It is built once in main and
// handed to the routes and middleware that need it, so nothing reads the
// environment after startup.
type Config struct {
	Port          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	S3Bucket      string
}

func LoadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		S3Bucket:      getEnv("S3_BUCKET", "duka"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
