package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Pattern records a validation pattern name.
func Pattern(name string) slog.Attr {
	return slog.String("pattern", name)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
