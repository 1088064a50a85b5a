package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Upstream struct {
	PedidosURL string `validate:"required,http_url"`
	Timeout    time.Duration
}

type WhatsApp struct {
	APIURL  string `validate:"required,http_url"`
	Token   string `validate:"required"`
	Timeout time.Duration
}

type Cache struct {
	TTL            time.Duration
	SweepThreshold int
}

type Retry struct {
	Attempts int
	Base     time.Duration
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Admin struct {
	User     string
	Password string
}

type Config struct {
	HTTPAddr string
	Debug    bool

	Upstream Upstream
	WhatsApp WhatsApp
	Cache    Cache
	Retry    Retry
	Breaker  Breaker
	Admin    Admin
}

// Load keeps the original API and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr: envDefault("HTTP_ADDR", ":8000"),
		Debug:    envBool("DEBUG_MODE", false),

		Upstream: Upstream{
			PedidosURL: strings.TrimSpace(os.Getenv("API_PEDIDOS_URL")),
			Timeout:    envDurationMS("REQUEST_TIMEOUT", 10*time.Second),
		},

		WhatsApp: WhatsApp{
			APIURL:  strings.TrimSpace(os.Getenv("WHATSAPP_API_URL")),
			Token:   strings.TrimSpace(os.Getenv("WHATSAPP_TOKEN")),
			Timeout: envDurationMS("REQUEST_TIMEOUT", 10*time.Second),
		},

		Cache: Cache{
			TTL:            envDurationSec("CACHE_TIMEOUT", 300*time.Second),
			SweepThreshold: envInt("CACHE_SWEEP_THRESHOLD", 1000),
		},

		Retry: Retry{
			Attempts: envInt("MAX_RETRIES", 3),
			Base:     envDurationMS("RETRY_BASE", time.Second),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Admin: Admin{
			User:     envDefault("ADMIN_USER", "admin"),
			Password: envDefault("ADMIN_PASS", "admin123"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	// URLs must be well-formed absolute http(s) addresses, token non-empty.
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Cache.TTL <= 0 {
		log.Printf("CACHE_TIMEOUT is %v, entries would expire immediately", c.Cache.TTL)
	}
	if c.Retry.Attempts < 1 {
		log.Printf("MAX_RETRIES is %d, adjusting to 1", c.Retry.Attempts)
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 1s", c.Retry.Base)
	}
	return nil
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %t: %v", k, v, def, err)
		return def
	}
	return b
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	return envDuration(k, def, time.Millisecond)
}

// envDurationSec is the same, but bare integers are read as seconds, matching
// how CACHE_TIMEOUT was historically configured.
func envDurationSec(k string, def time.Duration) time.Duration {
	return envDuration(k, def, time.Second)
}

func envDuration(k string, def, unit time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	// If it looks like a duration with units, try ParseDuration first.
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(n) * unit
}
