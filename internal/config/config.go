package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI  string
	RedisURI  string
	JWTSecret string
	Port      string

	AllowedOrigins []string

	// SMTP relay for OTP and notification mail.
	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
	MailFrom  string

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGODB_URI", getEnv("MONGO_DB_URL", "mongodb://localhost:27017/dropstore")),
		RedisURI:  getEnv("REDIS_URI", "redis://localhost:6379/0"),
		JWTSecret: getEnv("SECRET_KEY", "change-me-in-production"),
		Port:      getEnv("PORT", "3000"),

		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),

		SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		EmailUser: getEnv("EMAIL", ""),
		EmailPass: getEnv("PASSWORD", ""),
		MailFrom:  getEnv("MAIL_FROM", "drop-store.me"),

		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
