package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	// Backend REST distant
	APIURL          string
	UpstreamTimeout time.Duration

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
	JWTSecret     string

	// Cache catalogue (Redis optionnel)
	RedisHost       string
	RedisPassword   string
	CatalogCacheTTL time.Duration

	CORSAllowOrigins []string
	CartRateLimit    int
}

// Load charge .env s'il existe puis lit l'environnement.
// envFile vide = ".env"
func Load(envFile string) (Config, bool) {
	if envFile == "" {
		envFile = ".env"
	}
	loaded := godotenv.Load(envFile) == nil

	return Config{
		AppEnv:   getenv("APP_ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		Port:     getenv("PORT", "8080"),

		APIURL:          strings.TrimRight(getenv("API_URL", "http://localhost:5000"), "/"),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:  getBool("COOKIE_SECURE", false),
		JWTSecret:     os.Getenv("JWT_SECRET"),

		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CatalogCacheTTL: getDuration("CATALOG_CACHE_TTL", 10*time.Minute),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		CartRateLimit:    getInt("CART_RATE_LIMIT", 20),
	}, loaded
}

// IsProd indique un déploiement de production
func (c Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

// Validate vérifie les valeurs obligatoires.
// En dev un secret de session par défaut est accepté.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		if c.IsProd() {
			return errors.New("SESSION_SECRET manquant")
		}
		c.SessionSecret = "dev-session-secret-change-me"
	}
	if c.APIURL == "" {
		return errors.New("API_URL manquant")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT doit être positif")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return def
	}
	return d
}

func getInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}

func getBool(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
