package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/feedkeeper/internal/accounts"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "feedkeeper.db", c.DatabaseDSN)
	assert.Equal(t, 10*time.Second, c.OpTimeout)
	assert.Equal(t, accounts.DefaultAvatarURLTemplate, c.AvatarURLTemplate)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "feedkeeper.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.OpTimeout)
}
