// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	TLSCert         string
	TLSKey          string
	TokenKey        []byte
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// AuthEnabled reports whether API requests must carry a token.
func (c Config) AuthEnabled() bool {
	return len(c.TokenKey) > 0
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
		log.Println("config: no .env file, using process environment")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:            getenv("ADDR"),
		TLSCert:         getenv("TLS_CERT"),
		TLSKey:          getenv("TLS_KEY"),
		TokenKey:        []byte(getenv("TOKEN_KEY")),
		RateLimit:       1,
		RateBurst:       3,
		ShutdownTimeout: 5 * time.Second,
	}
	if cfg.Addr == "" {
		if cfg.TLS() {
			cfg.Addr = ":443"
		} else {
			cfg.Addr = ":8080"
		}
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT: invalid value %q", v)
		}
		cfg.RateLimit = f
	}
	if v := getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_BURST: invalid value %q", v)
		}
		cfg.RateBurst = n
	}
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}
