package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string
	Env      string

	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	OpenRouterKey string
	HTTPReferer   string
	AppTitle      string

	ReminderRule string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	cfg := Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "volunteerhub"),
		Port:     getEnv("PORT", "8000"),
		Env:      getEnv("APP_ENV", "development"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("EMAIL_USER", ""),
		SMTPPassword: getEnv("EMAIL_PASSWORD", ""),
		SMTPFrom:     getEnv("EMAIL_FROM", getEnv("EMAIL_USER", "")),

		OpenRouterKey: getEnv("OPENROUTER_API_KEY", ""),
		HTTPReferer:   getEnv("HTTP_REFERER", "http://localhost:3000"),
		AppTitle:      getEnv("APP_TITLE", "VolunteerHub"),

		ReminderRule: getEnv("REMINDER_RRULE", "FREQ=DAILY;BYHOUR=9;BYMINUTE=0;BYSECOND=0"),
	}
	return cfg
}

func (c Config) Production() bool {
	return c.Env == "production"
}
