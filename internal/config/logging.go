package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the CLI logger. Console format writes human-readable
// lines; JSON format writes one object per line.
func NewLogger(cfg LoggingConfig, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	switch cfg.Format {
	case LogFormatJSON:
	case LogFormatConsole, "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.Format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
