package config

import (
	"fmt"
	"io"
	"log/slog"
)

// ParseLogLevel maps debug, info, warn and error to the slog levels.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidSetting, raw)
	}

	return level, nil
}

// NewLogger builds the process logger writing to w in the configured format and level.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	handlerOptions := &slog.HandlerOptions{Level: level}

	switch cfg.LogFormat {
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, handlerOptions)), nil
	case LogFormatText:
		return slog.New(slog.NewTextHandler(w, handlerOptions)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, cfg.LogFormat)
	}
}
