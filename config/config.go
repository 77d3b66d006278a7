// Package config exposes process-wide configuration for the SGC API,
// read once from environment variables (optionally loaded from a .env file).
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("SGC_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("SGC_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("SGC_LISTEN")
}

func GetPort() int {
	return getEnvInt("SGC_PORT", 3000)
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("SGC_DB_FOLDER")
	if dbFolderPath == "" {
		if IsDebug() {
			return "db"
		}
		dbFolderPath = "/etc/sgc-api"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("SGC_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetJWTSecret returns the token signing secret. Rotating it invalidates
// every outstanding session token.
func GetJWTSecret() []byte {
	secret := os.Getenv("SGC_JWT_SECRET")
	if secret == "" {
		secret = "tu_secreto_jwt"
	}
	return []byte(secret)
}

// GetTokenTTL returns the session token lifetime, default 24h.
func GetTokenTTL() time.Duration {
	ttl := os.Getenv("SGC_TOKEN_TTL")
	if ttl == "" {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

func GetCORSOrigin() string {
	origin := os.Getenv("SGC_CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return origin
}

// GetRateLimitMax returns the maximum number of requests allowed per window.
func GetRateLimitMax() int {
	return getEnvInt("SGC_RATE_LIMIT_MAX", 100)
}

// GetRateLimitWindow returns the rate limit window, default 15 minutes.
func GetRateLimitWindow() time.Duration {
	window := os.Getenv("SGC_RATE_LIMIT_WINDOW")
	if window == "" {
		return 15 * time.Minute
	}
	d, err := time.ParseDuration(window)
	if err != nil || d <= 0 {
		return 15 * time.Minute
	}
	return d
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
