package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Brevo Configuration (transactional email + newsletter contacts)
	BrevoAPIKey    string
	BrevoAPIURL    string
	SenderName     string
	SenderEmail    string
	ContactEmailTo string // Organization inbox receiving contact notices
	// Brevo hosted templates / lists
	ContactTemplateID    int // Confirmation template for contact submissions
	NewsletterTemplateID int // Confirmation template for newsletter signups
	NewsletterListID     int64
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitFormThreshold   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Brevo Configuration
		BrevoAPIKey:    getEnv("BREVO_API_KEY", ""),
		BrevoAPIURL:    getEnv("BREVO_API_URL", "https://api.brevo.com/v3"),
		SenderName:     getEnv("MAIL_SENDER_NAME", "Ritter Digital GmbH"),
		SenderEmail:    getEnv("MAIL_SENDER_EMAIL", "kontakt@ritterdigital.de"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "kontakt@ritterdigital.de"),
		// Template and list IDs as configured in the Brevo account
		ContactTemplateID:    getEnvInt("BREVO_CONTACT_TEMPLATE_ID", 1),
		NewsletterTemplateID: getEnvInt("BREVO_NEWSLETTER_TEMPLATE_ID", 2),
		NewsletterListID:     int64(getEnvInt("BREVO_NEWSLETTER_LIST_ID", 2)),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),  // 1 minute window
		RateLimitFormThreshold:   getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 5),   // 5 form submissions per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
	}

	// Basic validation so misconfiguration surfaces at startup, not per request
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Contact requests will not be persisted.")
	}
	if cfg.BrevoAPIKey == "" {
		log.Println("WARNING: BREVO_API_KEY is missing. Form submissions will fail to send email.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
