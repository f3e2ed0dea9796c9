package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// SMTPConfig carries the outbound mail account settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Address  string
	Password string
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	SubmissionCollection string
	DistrictCollection   string
	CountryCollection    string
	RequestLogCollection string
	Timeout              time.Duration
	ServerLog            *log.Logger
	JWTConfigs           []JWTConfig
	JWTAudience          string
	SMTP                 SMTPConfig
	OperatorEmail        string
	AllowedOrigins       []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	sendingAddress := strings.TrimSpace(os.Getenv("SENDING_EMAIL_ADDRESS"))
	if sendingAddress == "" {
		log.Fatal("SENDING_EMAIL_ADDRESS must be configured")
	}
	sendingPassword := strings.TrimSpace(os.Getenv("SENDING_EMAIL_PASSWORD"))
	if sendingPassword == "" {
		log.Fatal("SENDING_EMAIL_PASSWORD must be configured")
	}

	smtpPort := 587
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			smtpPort = parsed
		}
	}

	operatorEmail := strings.TrimSpace(os.Getenv("OPERATOR_EMAIL"))
	if operatorEmail == "" {
		operatorEmail = sendingAddress
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("ADMIN_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("ADMIN_JWT_ISSUER", "interest-api-admin"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secret not configured. Set ADMIN_JWT_SECRET.")
	}
	jwtAudience := strings.TrimSpace(os.Getenv("ADMIN_JWT_AUDIENCE"))

	cfg := Config{
		Addr:                 envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:             envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:        envOrDefault("MONGO_DB", "email-forwarding"),
		SubmissionCollection: envOrDefault("SUBMISSION_COLLECTION", "interestSubmissions"),
		DistrictCollection:   envOrDefault("DISTRICT_CONTACT_COLLECTION", "districtContacts"),
		CountryCollection:    envOrDefault("COUNTRY_CONTACT_COLLECTION", "countryContacts"),
		RequestLogCollection: envOrDefault("REQUEST_LOG_COLLECTION", "requestLogs"),
		Timeout:              timeout,
		ServerLog:            log.New(os.Stdout, "[interest-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:           jwtConfigs,
		JWTAudience:          jwtAudience,
		SMTP: SMTPConfig{
			Host:     envOrDefault("SMTP_HOST", "smtp-mail.outlook.com"),
			Port:     smtpPort,
			Address:  sendingAddress,
			Password: sendingPassword,
		},
		OperatorEmail:  operatorEmail,
		AllowedOrigins: allowedOrigins,
	}

	cfg.ServerLog.Printf("loaded config: addr=%q smtpHost=%q operator=%q", cfg.Addr, cfg.SMTP.Host, operatorEmail)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
