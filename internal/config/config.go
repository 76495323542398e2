package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

type Config struct {
	Env      string
	HTTPAddr string

	DBDriver    string
	DatabaseDSN string

	JWTSecret string
	CryptoKey string

	LogLevel  string
	LogFormat string

	CORSOrigins []string

	SMTP SMTPConfig

	OTPCleanupSchedule string
	GoogleAPIKey       string
}

// Load reads the process environment, after merging a local .env file when
// one exists. Lambda deployments get their environment from the function
// configuration only.
func Load() Config {
	env := GetEnv("APP_ENV", "local")
	if env != "lambda" {
		if err := godotenv.Load(); err != nil {
			logrus.Debug(".env file not found, using system environment")
		}
	}

	driver := GetEnv("DB_DRIVER", "postgres")
	dsn := GetEnv("DATABASE_DSN")
	if dsn == "" && driver == DriverSQLite {
		dsn = "file:exam_portal.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	return Config{
		Env:         env,
		HTTPAddr:    GetEnv("HTTP_ADDR", ":8080"),
		DBDriver:    driver,
		DatabaseDSN: dsn,
		JWTSecret:   GetEnv("JWT_SECRET"),
		CryptoKey:   GetEnv("CRYPTO_KEY"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		LogFormat:   GetEnv("LOG_FORMAT", "json"),
		CORSOrigins: csv(GetEnv("CORS_ORIGINS", "http://localhost:3000")),
		SMTP: SMTPConfig{
			Host:     GetEnv("SMTP_HOST"),
			Port:     getInt("SMTP_PORT", 587),
			Username: GetEnv("SMTP_USERNAME"),
			Password: GetEnv("SMTP_PASSWORD"),
			Sender:   GetEnv("SMTP_SENDER"),
		},
		OTPCleanupSchedule: GetEnv("OTP_CLEANUP_SCHEDULE", "@every 10m"),
		GoogleAPIKey:       GetEnv("GOOGLE_API_KEY"),
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getInt(key string, def int) int {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithField("key", key).Warnf("invalid integer %q, using %d", v, def)
		return def
	}
	return n
}

func csv(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
