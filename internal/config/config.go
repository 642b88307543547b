package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// Loads a local .env file into the process environment before
	// any variable is read, matching the deployment setup.
	_ "github.com/joho/godotenv/autoload"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	SMTP     SMTPConfig
	Mail     MailConfig
	CORS     CORSConfig
	Voucher  VoucherConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// SMTPConfig describes the outbound mail provider connection.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS when true, STARTTLS otherwise
	Username string
	Password string
}

// MailConfig holds the sender identity and the fixed business recipient.
type MailConfig struct {
	FromName      string // display name on outgoing mail
	OrderReceiver string // business inbox that gets every notification
}

type CORSConfig struct {
	AllowedOrigins []string
}

type VoucherConfig struct {
	// File optionally points at a JSON voucher catalog that replaces
	// the built-in one at startup.
	File string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Secure:   getEnv("SMTP_SECURE", "false") == "true",
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
		},
		Mail: MailConfig{
			FromName:      getEnv("MAIL_FROM_NAME", "Tassel Shop"),
			OrderReceiver: getEnv("ORDER_RECEIVER", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{
				"http://localhost:5173",
				"https://FulloMyself.github.io",
				"https://FulloMyself.github.io/Tassel_Shop/",
			}),
		},
		Voucher: VoucherConfig{
			File: getEnv("VOUCHER_FILE", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.SMTP.Host == "" {
		return fmt.Errorf("SMTP_HOST is required")
	}

	if c.SMTP.Username == "" {
		return fmt.Errorf("SMTP_USER is required")
	}

	if c.Mail.OrderReceiver == "" {
		return fmt.Errorf("ORDER_RECEIVER is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
