package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// SuperAdminEmails is the set of identities that bypass every
	// authorization check. Resolved once at startup.
	SuperAdminEmails map[string]bool

	// StrictValidation enables enum membership and coordinate range checks
	// on submissions. Off by default: the upstream behavior accepts any
	// category string and unbounded coordinates.
	StrictValidation bool

	// RewardCompatMode switches the reward ledger to the legacy
	// read-modify-write path. Not safe under concurrent rewards for the
	// same profile; kept for stores without atomic increments.
	RewardCompatMode bool

	MediaDir      string
	PublicBaseURL string
	SwaggerHost   string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/cityeyes?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		SuperAdminEmails: splitEmailSet(os.Getenv("SUPER_ADMIN_EMAILS")),
		StrictValidation: getEnvBool("STRICT_VALIDATION", false),
		RewardCompatMode: getEnvBool("REWARD_COMPAT_MODE", false),
		MediaDir:         getEnv("MEDIA_DIR", "./media"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
	}
}

func splitEmailSet(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(part))
		if email != "" {
			set[email] = true
		}
	}
	return set
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
