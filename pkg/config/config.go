package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Окно самозаписи оценивается в этой фиксированной таймзоне.
	BookingTimezone string
	PublicBaseURL   string

	SMTPAddr     string
	SMTPFrom     string
	SMTPUser     string
	SMTPPassword string

	InterviewLocation string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "staffing-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		BookingTimezone: getEnv("BOOKING_TZ", "Asia/Jerusalem"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		SMTPAddr:     os.Getenv("SMTP_ADDR"),
		SMTPFrom:     getEnv("SMTP_FROM", "no-reply@staffing.local"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		InterviewLocation: getEnv("INTERVIEW_LOCATION", "https://meet.staffing.local/room-1"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
