package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DatabaseURL    string
	DatabaseDriver string // postgres | sqlite
	AutoMigrate    bool
	Port           string
	Env            string
	LogLevel       string

	// Twilio WhatsApp webhook
	TwilioAuthToken         string
	TwilioWhatsAppNumber    string
	TwilioValidateSignature bool
	PublicWebhookURL        string
	WhatsAppVerifyToken     string
	WebhookTimeout          time.Duration

	// Inbound idempotency
	WebhookDedup       bool
	DedupRetention     time.Duration
	DedupPruneSchedule string

	// AI query fallback
	OpenAIKey  string
	LLMModel   string
	RedisURL   string
	AICacheTTL time.Duration

	AdminAPIToken string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		DatabaseDriver:          os.Getenv("DATABASE_DRIVER"),
		AutoMigrate:             getBool("AUTO_MIGRATE", true),
		Port:                    os.Getenv("PORT"),
		Env:                     os.Getenv("ENV"),
		LogLevel:                os.Getenv("LOG_LEVEL"),
		TwilioAuthToken:         os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber:    os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		TwilioValidateSignature: getBool("TWILIO_VALIDATE_SIGNATURE", false),
		PublicWebhookURL:        os.Getenv("PUBLIC_WEBHOOK_URL"),
		WhatsAppVerifyToken:     os.Getenv("WHATSAPP_VERIFY_TOKEN"),
		WebhookTimeout:          getDuration("WEBHOOK_TIMEOUT", 15*time.Second),
		WebhookDedup:            getBool("WEBHOOK_DEDUP", true),
		DedupRetention:          getDuration("DEDUP_RETENTION", 7*24*time.Hour),
		DedupPruneSchedule:      os.Getenv("DEDUP_PRUNE_SCHEDULE"),
		OpenAIKey:               os.Getenv("OPENAI_API_KEY"),
		LLMModel:                os.Getenv("LLM_MODEL"),
		RedisURL:                os.Getenv("REDIS_URL"),
		AICacheTTL:              getDuration("AI_CACHE_TTL", time.Hour),
		AdminAPIToken:           os.Getenv("ADMIN_API_TOKEN"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = DetectDriver(cfg.DatabaseURL)
	}
	if cfg.TwilioWhatsAppNumber == "" {
		// Twilio sandbox number
		cfg.TwilioWhatsAppNumber = "whatsapp:+14155238886"
	}
	if cfg.DedupPruneSchedule == "" {
		cfg.DedupPruneSchedule = "@daily"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o-mini"
	}

	return cfg
}

// IsProduction reports whether debug-only routes must stay disabled.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DetectDriver infers the database driver from a connection URL.
func DetectDriver(url string) string {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "postgres"
	case url == "", strings.HasPrefix(url, "file:"), strings.HasSuffix(url, ".db"), strings.Contains(url, ":memory:"):
		return "sqlite"
	default:
		return "postgres"
	}
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid boolean, using default")
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return def
	}
	return d
}
