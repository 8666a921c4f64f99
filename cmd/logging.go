package cmd

import (
	"io"
	"os"
	"time"

	cfgpkg "github.com/KaramelBytes/likelens/internal/config"
	"github.com/rs/zerolog"
)

func newLogger(c *cfgpkg.Global, debug bool) zerolog.Logger {
	var out io.Writer = os.Stderr
	if c.LogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
