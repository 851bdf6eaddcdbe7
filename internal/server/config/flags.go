package config

import (
	"flag"
	"os"

	"github.com/shopeasy/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-p string   listen port (default from Config)
//	-s string   directory holding the built SPA
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Port, "p", cfg.Port, "listen port")
	fs.StringVar(&cfg.StaticDir, "s", cfg.StaticDir, "directory holding the built SPA")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
