package config

import (
	"time"

	"github.com/dmitrijs2005/feedkeeper/internal/accounts"
)

// Config holds runtime settings for the FeedKeeper CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local sqlite store.
//   - OpTimeout: per-operation timeout applied to core calls.
//   - AvatarURLTemplate: fmt template producing an avatar URL from a username.
//
// Units: OpTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	DatabaseDSN       string
	OpTimeout         time.Duration
	AvatarURLTemplate string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "feedkeeper.db"
	c.OpTimeout = 10 * time.Second
	c.AvatarURLTemplate = accounts.DefaultAvatarURLTemplate
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
