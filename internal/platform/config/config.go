package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"dealerdesk/pkg/platform/debounce"
)

// Config captures process-level configuration. Built once in main from
// environment variables so the rest of the code never reads the environment.
type Config struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string

	// ResubmitWindow is the duplicate-submission guard window.
	ResubmitWindow time.Duration

	// PostgresDSN enables the postgres-backed stores when set; otherwise
	// the in-memory stores are used (development mode).
	PostgresDSN string

	// RedisURL enables the Redis token revocation list when set.
	RedisURL string

	// KafkaBrokers enables the audit Kafka mirror when non-empty.
	KafkaBrokers []string
	KafkaTopic   string

	// AuditBuffer sizes the async audit buffer; 0 means synchronous writes.
	AuditBuffer int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:           envOr("DEALERDESK_ADDR", ":8080"),
		JWTSigningKey:  envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:      envOr("JWT_ISSUER", "dealerdesk"),
		ResubmitWindow: debounce.DefaultWindow,
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		RedisURL:       os.Getenv("REDIS_URL"),
		KafkaTopic:     os.Getenv("KAFKA_AUDIT_TOPIC"),
	}

	if raw := os.Getenv("RESUBMIT_WINDOW_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.ResubmitWindow = time.Duration(secs) * time.Second
		}
	}

	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, broker := range strings.Split(raw, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
			}
		}
	}

	if raw := os.Getenv("AUDIT_BUFFER"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.AuditBuffer = n
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
