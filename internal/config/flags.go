package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/feedkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path/DSN of the local database (default from Config)
//	-t int      per-operation timeout in seconds (default from Config)
//	-a string   avatar URL template (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local database")
	fs.StringVar(&cfg.AvatarURLTemplate, "a", cfg.AvatarURLTemplate, "avatar url template")
	opTimeout := fs.Int("t", int(cfg.OpTimeout.Seconds()), "operation timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OpTimeout = time.Duration(*opTimeout) * time.Second
}
