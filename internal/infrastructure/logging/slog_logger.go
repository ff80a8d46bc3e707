package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// SlogLogger implementa ports.Logger usando slog do stdlib
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger cria um novo logger JSON em stdout
func NewSlogLogger(level string) ports.Logger {
	return NewSlogLoggerTo(os.Stdout, level)
}

// NewSlogLoggerTo cria um logger JSON escrevendo em w
func NewSlogLoggerTo(w io.Writer, level string) ports.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	return &SlogLogger{logger: slog.New(slog.NewJSONHandler(w, opts))}
}

// ParseLevel converte o nível textual (debug, info, warn, error); padrão info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) With(args ...any) ports.Logger {
	return &SlogLogger{
		logger: l.logger.With(args...),
	}
}
