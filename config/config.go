package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is built once at startup and
// handed to every component that needs it.
type Config struct {
	Port     string
	LogLevel string

	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string // database name, or file path for sqlite
	DBSSLMode  string

	JWTKey string

	RazorpayKey    string
	RazorpaySecret string // also the HMAC key for callback signatures
	RazorpayAPIURL string
	GatewayTimeout time.Duration
	Currency       string

	MailTransport  string // smtp or sendgrid
	MailHost       string
	MailPort       int
	MailUser       string
	MailPass       string // SMTP Password
	MailFrom       string
	SendGridAPIKey string

	OrderTTL           time.Duration
	OrderSweepInterval time.Duration

	AllowedOrigins string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "4000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "studynotion"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		RazorpayKey:    getEnv("RAZORPAY_KEY", ""),
		RazorpaySecret: getEnv("RAZORPAY_SECRET", ""),
		RazorpayAPIURL: getEnv("RAZORPAY_API_URL", "https://api.razorpay.com/v1"),
		GatewayTimeout: getEnvDuration("RAZORPAY_TIMEOUT", 15*time.Second),
		Currency:       getEnv("PAYMENT_CURRENCY", "INR"),

		MailTransport:  getEnv("MAIL_TRANSPORT", "smtp"),
		MailHost:       getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort:       getEnvInt("MAIL_PORT", 587),
		MailUser:       getEnv("MAIL_USER", ""),
		MailPass:       getEnv("MAIL_PASS", ""),
		MailFrom:       getEnv("MAIL_FROM", "StudyNotion <no-reply@studynotion.in>"),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		OrderTTL:           getEnvDuration("ORDER_TTL", 24*time.Hour),
		OrderSweepInterval: getEnvDuration("ORDER_SWEEP_INTERVAL", 30*time.Minute),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}

	return cfg, nil
}

// Validate reports configuration that would make the payment flow unusable.
func (c *Config) Validate() error {
	if c.RazorpaySecret == "" {
		return errors.New("RAZORPAY_SECRET is required")
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}
	switch c.MailTransport {
	case "smtp":
	case "sendgrid":
		if c.SendGridAPIKey == "" {
			return errors.New("SENDGRID_API_KEY is required when MAIL_TRANSPORT=sendgrid")
		}
	default:
		return errors.New("MAIL_TRANSPORT must be smtp or sendgrid")
	}
	if c.OrderSweepInterval <= 0 {
		return errors.New("ORDER_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
