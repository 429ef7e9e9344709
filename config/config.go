package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Env          string
	Port         string
	CatalogPath  string
	PostgresDSN  string // optional: load the catalog from the dashboard DB
	RedisAddr    string // optional: Redis-backed sessions + order queue
	SessionTTL   time.Duration
	KeywordsPath string // optional: YAML keyword-set overrides
	IntentURL    string // optional: external intent-detection service
	APIKey       string // bearer token for operator endpoints
	DeliveryFee  float64
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig loads the configuration exactly once (singleton).
func LoadConfig() *Config {
	once.Do(func() {
		// Probe for a .env file in the usual places.
		envPaths := []string{".env", "../.env", "../../.env"}
		for _, path := range envPaths {
			if err := godotenv.Load(path); err == nil {
				break
			}
		}

		cfg = &Config{
			Env:          getEnv("APP_ENV", "development"),
			Port:         getEnv("PORT", "8080"),
			CatalogPath:  getEnv("CATALOG_PATH", "dados_estabelecimentos.json"),
			PostgresDSN:  getEnv("POSTGRES_DSN", ""),
			RedisAddr:    getRedisAddr(),
			SessionTTL:   getEnvDuration("SESSION_TTL", 24*time.Hour),
			KeywordsPath: getEnv("KEYWORDS_PATH", ""),
			IntentURL:    getEnv("INTENT_URL", ""),
			APIKey:       getEnv("API_KEY", ""),
			DeliveryFee:  getEnvFloat("DELIVERY_FEE", 80),
		}
	})
	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using default", key, val)
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("⚠️ Invalid %s=%q, using default", key, val)
		return defaultVal
	}
	return d
}

// getRedisAddr extracts the Redis address from REDIS_URL or REDIS_ADDR.
// Empty means Redis is disabled and sessions stay in process memory.
func getRedisAddr() string {
	if redisURL, ok := os.LookupEnv("REDIS_URL"); ok && redisURL != "" {
		// Parse redis://localhost:6379/0 -> localhost:6379
		if redisURL == "redis://localhost:6379/0" {
			return "localhost:6379"
		}
		return redisURL
	}
	if redisAddr, ok := os.LookupEnv("REDIS_ADDR"); ok && redisAddr != "" {
		return redisAddr
	}
	return ""
}
