package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":3000"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataFile  string // path to the portfolio JSON document
	RulesFile string // path to a classifier rules yaml (optional, empty = built-in rules)

	// Redis (optional: analytics disabled when RedisAddr is empty)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 15s)
	RedisRetryInterval  time.Duration // Initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 2s)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FOLIO_LISTEN_PORT", ":3000"),
		ShutdownTimeout: mustDuration("FOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("FOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FOLIO_PRETTY_LOG", true),

		// Data files
		DataFile:  getenv("FOLIO_DATA_FILE", "db.json"),
		RulesFile: getenv("FOLIO_RULES_FILE", ""),

		// Redis settings
		RedisAddr:           getenv("FOLIO_REDIS_ADDR", ""),
		RedisUser:           getenv("FOLIO_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("FOLIO_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("FOLIO_REDIS_DB", 0),
		RedisDT:             mustDuration("FOLIO_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("FOLIO_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("FOLIO_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("FOLIO_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("FOLIO_REDIS_CONNECT_TIMEOUT", 15*time.Second),
		RedisRetryInterval:  mustDuration("FOLIO_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("FOLIO_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("FOLIO_REDIS_PING_TIMEOUT", 2*time.Second),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
