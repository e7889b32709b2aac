package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

// Init bootstraps the global logger from the environment so failures
// before config parsing are still structured. Apply reconfigures it once
// config is loaded.
func Init() {
	Apply(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Apply points the global logger at stdout with the given level and
// format, normally the values carried by config.
func Apply(level, format string) {
	Logger = New(os.Stdout, level, format)
	zlog.Logger = Logger
}

// New builds a logger writing to w. An unknown or empty level falls back
// to info; any format other than "json" renders for the console.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == "json" {
		return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger().Level(lvl)
}
