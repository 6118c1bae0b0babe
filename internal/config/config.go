package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full environment configuration. A .env file in the working
// directory is merged in before parsing; every field has a sane default so
// the CLI works with nothing set.
type Config struct {
	DBPath      string `env:"SQ_DB_PATH"`
	HunterName  string `env:"SQ_HUNTER_NAME" envDefault:"Hunter"`
	CatalogPath string `env:"SQ_CATALOG_PATH"`
	Timezone    string `env:"SQ_TZ" envDefault:"Local"`

	// StoreWilPenalty toggles the willpower cost on store purchases.
	StoreWilPenalty bool `env:"STORE_WIL_PENALTY" envDefault:"true"`

	// Notifier channels. Empty values disable the channel.
	NtfyTopic      string `env:"NTFY_TOPIC"`
	TelegramToken  string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_CHAT_ID"`
	ReportHour     int    `env:"REPORT_HOUR" envDefault:"21"`
}

func Load() (Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.ReportHour < 0 || c.ReportHour > 23 {
		return Config{}, fmt.Errorf("REPORT_HOUR must be 0-23, got %d", c.ReportHour)
	}
	return c, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
