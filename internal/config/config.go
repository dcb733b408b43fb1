// Package config reads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultLiveURL    = "https://127.0.0.1:2999/liveclientdata/allgamedata"
	DefaultMerakiURL  = "https://cdn.merakianalytics.com/riot/lol/resources/latest/en-US"
	DefaultDDragonURL = "https://ddragon.leagueoflegends.com"
)

type Config struct {
	Addr            string
	Debug           bool
	LiveURL         string
	MerakiURL       string
	DDragonURL      string
	DDragonLocale   string
	ProviderTimeout time.Duration
	LiveTimeout     time.Duration
	Workers         int
	PushInterval    time.Duration
	AllowedOrigins  []string
}

// Load reads the first .env file found in paths, then the environment.
// A missing .env file is not an error.
func Load(paths ...string) Config {
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	return Config{
		Addr:            ":" + envString("PORT", "3000"),
		Debug:           os.Getenv("COOLDOWNS_DEBUG") != "",
		LiveURL:         envString("COOLDOWNS_LIVE_URL", DefaultLiveURL),
		MerakiURL:       envString("COOLDOWNS_MERAKI_URL", DefaultMerakiURL),
		DDragonURL:      envString("COOLDOWNS_DDRAGON_URL", DefaultDDragonURL),
		DDragonLocale:   envString("COOLDOWNS_DDRAGON_LOCALE", "en_US"),
		ProviderTimeout: envDuration("COOLDOWNS_PROVIDER_TIMEOUT", 5*time.Second),
		LiveTimeout:     envDuration("COOLDOWNS_LIVE_TIMEOUT", 5*time.Second),
		Workers:         envInt("COOLDOWNS_WORKERS", 10),
		PushInterval:    envDuration("COOLDOWNS_PUSH_INTERVAL", 5*time.Second),
		AllowedOrigins:  envList("COOLDOWNS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func envString(name, defaultVal string) string {
	if s := strings.TrimSpace(os.Getenv(name)); s != "" {
		return s
	}
	return defaultVal
}

// envInt returns env value as int, or default if unset/invalid.
func envInt(name string, defaultVal int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

// envDuration returns env value as duration, or default if unset/invalid.
func envDuration(name string, defaultVal time.Duration) time.Duration {
	if s := os.Getenv(name); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}

func envList(name string, defaultVal []string) []string {
	s := os.Getenv(name)
	if s == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
