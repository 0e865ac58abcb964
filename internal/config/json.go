package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/feedkeeper/internal/flagx"
	"github.com/dmitrijs2005/feedkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as
// a string like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN       string         `json:"database_dsn"`
	OpTimeout         timex.Duration `json:"op_timeout"`
	AvatarURLTemplate string         `json:"avatar_url_template"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c/-config flags via
// flagx.JsonConfigFlags(); if empty, no JSON is loaded. Only fields present
// in the file override the current values. Panics on read or unmarshal
// errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.OpTimeout.Duration != 0 {
		cfg.OpTimeout = jc.OpTimeout.Duration
	}
	if jc.AvatarURLTemplate != "" {
		cfg.AvatarURLTemplate = jc.AvatarURLTemplate
	}
}
