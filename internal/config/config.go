package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	CacheDir    string
	LRUCap      int
	HTTPTimeout time.Duration

	PretixBaseURL string
	GitHubBaseURL string

	DevLog bool
}

// Load reads the environment (optionally seeded from .env). Every key has a
// default, so loading cannot fail; implausible values are adjusted with a
// notice.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		CacheDir:    envDefault("CACHE_DIR", "cache"),
		LRUCap:      envInt("LRU_CAP", 256),
		HTTPTimeout: envDurationMS("HTTP_TIMEOUT", 30*time.Second),

		PretixBaseURL: envDefault("PRETIX_BASE_URL", ""),
		GitHubBaseURL: envDefault("GITHUB_BASE_URL", ""),

		DevLog: envBool("LOG_DEV", false),
	}

	if cfg.LRUCap <= 0 {
		log.Printf("LRU_CAP is %d, adjusting to 1", cfg.LRUCap)
		cfg.LRUCap = 1
	}
	if cfg.HTTPTimeout < 0 {
		log.Printf("HTTP_TIMEOUT is %v, adjusting to 0 (no timeout)", cfg.HTTPTimeout)
		cfg.HTTPTimeout = 0
	}
	return cfg
}

// ReadToken reads a credential file containing one bearer token, trimmed of
// surrounding whitespace.
func ReadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %q is empty", path)
	}
	return token, nil
}

// ReadOptionalToken is ReadToken for credentials the caller can live
// without: an empty path or a missing file yields an empty token.
func ReadOptionalToken(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	token, err := ReadToken(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	return token, err
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
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}
